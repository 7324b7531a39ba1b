package argbind

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/argbind/argbind/config"
	"github.com/argbind/argbind/internal/bind"
	"github.com/argbind/argbind/internal/xerrors"
	"github.com/argbind/argbind/log"
)

// Resolve finds the argument for v of expected type through the chain of cfg.
func Resolve(cfg config.Config, expected Type, v any) (Argument, error) {
	a, err := cfg.Arguments().FindFor(expected, v)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return a, nil
}

// Args converts values into database/sql arguments. Values are bound at
// positions starting from 1, sql.NamedArg keeps its name around the bound value.
// Every failed position is reported, not only the first one.
func Args(ctx context.Context, cfg config.Config, values ...any) ([]any, error) {
	ctx = log.WithNames(ctx, "argbind", "args")
	l := cfg.Logger()

	var errs []error
	stmt := newDriverStatement(cfg.IntervalFormat(), len(values))
	for i, v := range values {
		position := i + 1
		named, isNamed := v.(sql.NamedArg)
		if isNamed {
			v = named.Value
		}
		a, err := Resolve(cfg, bind.Any, v)
		if err == nil {
			err = a.WriteTo(position, stmt)
		}
		if err != nil {
			l.Log(log.WithLevel(ctx, log.ERROR), "bind failed",
				log.Int("position", position),
				log.String("type", fmt.Sprintf("%T", v)),
				log.Error(err),
			)

			errs = append(errs, fmt.Errorf("argument %d: %w", position, err))

			continue
		}
		l.Log(log.WithLevel(ctx, log.DEBUG), "bound",
			log.Int("position", position),
			log.Stringer("value", a),
		)
		if isNamed {
			stmt.values[i] = sql.Named(named.Name, stmt.values[i])
		}
	}

	if len(errs) > 0 {
		return nil, xerrors.WithStackTrace(xerrors.Join(errs...))
	}

	return stmt.values, nil
}
