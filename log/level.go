package log

import "strings"

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

const colorReset = "\033[0m"

type levelStyle struct {
	label     string
	color     string
	boldColor string
}

var levelStyles = [...]levelStyle{
	TRACE: {label: "TRACE", color: "\033[38m", boldColor: "\033[47m"},
	DEBUG: {label: "DEBUG", color: "\033[37m", boldColor: "\033[100m"},
	INFO:  {label: "INFO", color: "\033[36m", boldColor: "\033[106m"},
	WARN:  {label: "WARN", color: "\033[33m", boldColor: "\u001B[30m\033[103m"},
	ERROR: {label: "ERROR", color: "\033[31m", boldColor: "\033[101m"},
	FATAL: {label: "FATAL", color: "\033[41m", boldColor: "\033[101m"},
	QUIET: {label: "QUIET", color: colorReset},
}

func (l Level) style() levelStyle {
	if l < TRACE || l > QUIET {
		return levelStyles[QUIET]
	}

	return levelStyles[l]
}

func (l Level) String() string {
	return l.style().label
}

func (l Level) Color() string {
	return l.style().color
}

func (l Level) BoldColor() string {
	return l.style().boldColor
}

// FromString parses level label case-insensitively, unknown labels are QUIET.
func FromString(s string) Level {
	for l, style := range levelStyles {
		if strings.EqualFold(style.label, s) {
			return Level(l)
		}
	}

	return QUIET
}
