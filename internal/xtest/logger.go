package xtest

import (
	"context"
	"strings"
	"testing"

	"github.com/argbind/argbind/log"
)

type testLogger struct {
	t testing.TB
}

// Logger writes messages of every level into test log.
func Logger(t testing.TB) log.Logger {
	return testLogger{t: t}
}

func (l testLogger) Log(ctx context.Context, msg string, fields ...log.Field) {
	l.t.Helper()

	b := strings.Builder{}
	b.WriteString(log.LevelFromContext(ctx).String())
	b.WriteString(" [")
	b.WriteString(strings.Join(log.NamesFromContext(ctx), "."))
	b.WriteString("] ")
	b.WriteString(msg)
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key())
		b.WriteByte('=')
		b.WriteString(f.String())
	}
	l.t.Log(b.String())
}
