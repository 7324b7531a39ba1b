package log

import (
	"context"
)

// scope is the level and namespace a message inherits from its context.
type scope struct {
	level Level
	names []string
}

type scopeKey struct{}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

// withNames never writes into the parent's backing array, so sibling
// contexts do not see each other's names.
func (s scope) withNames(names ...string) scope {
	s.names = append(s.names[:len(s.names):len(s.names)], names...)

	return s
}

func WithLevel(ctx context.Context, lvl Level) context.Context {
	s := scopeFrom(ctx)
	s.level = lvl

	return context.WithValue(ctx, scopeKey{}, s)
}

func LevelFromContext(ctx context.Context) Level {
	return scopeFrom(ctx).level
}

// WithNames appends names to the namespace, `argbind.args` style.
func WithNames(ctx context.Context, names ...string) context.Context {
	return context.WithValue(ctx, scopeKey{}, scopeFrom(ctx).withNames(names...))
}

func NamesFromContext(ctx context.Context) []string {
	names := scopeFrom(ctx).names
	if names == nil {
		return []string{}
	}

	return names[:len(names):len(names)]
}

// With sets level and appends names in one context value.
func With(ctx context.Context, lvl Level, names ...string) context.Context {
	s := scopeFrom(ctx).withNames(names...)
	s.level = lvl

	return context.WithValue(ctx, scopeKey{}, s)
}
