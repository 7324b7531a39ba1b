package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/argbind/argbind/internal/xstring"
)

const dateLayout = "2006-01-02 15:04:05.000"

type Logger interface {
	// Log logs the message with level and names from context.
	// Implementations must not in any way use slice of fields after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = (*defaultLogger)(nil)

type Option func(l *defaultLogger)

func WithMinLevel(level Level) Option {
	return func(l *defaultLogger) {
		l.minLevel = level
	}
}

func WithColoring() Option {
	return func(l *defaultLogger) {
		l.coloring = true
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(l *defaultLogger) {
		l.clock = clock
	}
}

// Default writes one line per message into w.
func Default(w io.Writer, opts ...Option) *defaultLogger {
	l := &defaultLogger{
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	return l
}

type defaultLogger struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock

	mu sync.Mutex
	w  io.Writer
}

func (l *defaultLogger) format(namespace []string, msg string, lvl Level) string {
	b := xstring.Buffer()
	defer b.Free()
	if l.coloring {
		b.WriteString(lvl.Color())
	}
	b.WriteString(l.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	if l.coloring {
		b.WriteString(colorReset)
		b.WriteString(lvl.BoldColor())
	}
	b.WriteString(lvl.String())
	if l.coloring {
		b.WriteString(colorReset)
		b.WriteString(lvl.Color())
	}
	b.WriteString(" '")
	for i, name := range namespace {
		if i != 0 {
			b.WriteByte('.')
		}
		b.WriteString(name)
	}
	b.WriteString("' => ")
	b.WriteString(msg)
	if l.coloring {
		b.WriteString(colorReset)
	}

	return b.String()
}

func (l *defaultLogger) appendFields(msg string, fields ...Field) string {
	if len(fields) == 0 {
		return msg
	}
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString(msg)
	b.WriteString(" {")
	for i := range fields {
		if i != 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, `%q:%q`, fields[i].Key(), fields[i].String())
	}
	b.WriteByte('}')

	return b.String()
}

func (l *defaultLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < l.minLevel {
		return
	}
	line := l.format(NamesFromContext(ctx), l.appendFields(msg, fields...), lvl) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.w, line)
}

type nopLogger struct{}

func (nopLogger) Log(context.Context, string, ...Field) {}

// Nop discards every message.
func Nop() Logger {
	return nopLogger{}
}
