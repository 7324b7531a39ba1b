package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/argbind/argbind/internal/xstring"
)

// Record returns `pkg/path.Func(file.go:line)` of the caller at given depth.
// Depth 0 is the function which calls Record.
func Record(depth int) string {
	function, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "unknown"
	}

	name := strings.ReplaceAll(runtime.FuncForPC(function).Name(), "[...]", "")
	name = trimLambdas(name)
	if i := strings.LastIndexByte(file, '/'); i > -1 {
		file = file[i+1:]
	}

	buffer := xstring.Buffer()
	defer buffer.Free()
	buffer.WriteString(name)
	buffer.WriteByte('(')
	buffer.WriteString(file)
	buffer.WriteByte(':')
	buffer.WriteString(strconv.Itoa(line))
	buffer.WriteByte(')')

	return buffer.String()
}

// trimLambdas cuts anonymous function suffixes like `.func1.2`.
func trimLambdas(name string) string {
	pkgEnd := strings.LastIndexByte(name, '/') + 1
	parts := strings.Split(name[pkgEnd:], ".")
	for len(parts) > 1 {
		last := parts[len(parts)-1]
		if !strings.HasPrefix(last, "func") && !isNumber(last) {
			break
		}
		parts = parts[:len(parts)-1]
	}

	return name[:pkgEnd] + strings.Join(parts, ".")
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
