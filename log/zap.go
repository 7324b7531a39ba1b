package log

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	l *zap.Logger
}

// Zap adapts zap logger. Names from context become the logger name joined by dots.
func Zap(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl >= QUIET {
		return
	}
	l := z.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}
	if ce := l.Check(zapLevel(lvl), msg); ce != nil {
		ce.Write(zapFields(fields)...)
	}
}

func zapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	default:
		// FATAL is not mapped to zap fatal which exits the process
		return zapcore.ErrorLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.ftype {
		case intType, int64Type:
			zf = append(zf, zap.Int64(f.key, f.vint))
		case stringType:
			zf = append(zf, zap.String(f.key, f.vstr))
		case boolType:
			zf = append(zf, zap.Bool(f.key, f.vbool))
		case durationType:
			zf = append(zf, zap.Duration(f.key, time.Duration(f.vint)))
		case errorType:
			err, _ := f.vany.(error)
			zf = append(zf, zap.NamedError(f.key, err))
		case stringerType:
			zf = append(zf, zap.Stringer(f.key, f.vany.(fmt.Stringer))) //nolint:forcetypeassert
		default:
			zf = append(zf, zap.Any(f.key, f.vany))
		}
	}

	return zf
}
