package bind

import (
	"errors"
	"fmt"

	"github.com/argbind/argbind/internal/types"
	"github.com/argbind/argbind/internal/xerrors"
)

var ErrUnsupportedType = errors.New("unsupported type")

// Arguments is an immutable chain of factories. Factories registered later
// are tried first.
type Arguments struct {
	factories   []Factory
	untypedNull Argument
}

type Option func(a *Arguments)

// WithFactory registers factory in front of already registered ones.
func WithFactory(f Factory) Option {
	return func(a *Arguments) {
		a.factories = append([]Factory{f}, a.factories...)
	}
}

// WithRegistry replaces built-in registry of the default factory.
func WithRegistry(r *Registry) Option {
	return func(a *Arguments) {
		a.factories[len(a.factories)-1] = BuiltInFactory(r)
	}
}

func WithUntypedNull(arg Argument) Option {
	return func(a *Arguments) {
		a.untypedNull = arg
	}
}

func NewArguments(opts ...Option) *Arguments {
	a := &Arguments{
		factories:   []Factory{BuiltInFactory(BuiltIns)},
		untypedNull: NullArgument(types.Null),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// With returns a copy of chain with opts applied.
func (a *Arguments) With(opts ...Option) *Arguments {
	c := &Arguments{
		factories:   append([]Factory(nil), a.factories...),
		untypedNull: a.untypedNull,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Find asks factories in order until one of them binds or fails.
func (a *Arguments) Find(expected Type, v any) Result {
	for _, f := range a.factories {
		if r := f.Build(expected, v, a); r.State() != StateDeclined {
			return r
		}
	}

	return Declined()
}

// FindFor is Find which turns declination into ErrUnsupportedType.
func (a *Arguments) FindFor(expected Type, v any) (Argument, error) {
	r := a.Find(expected, v)
	switch r.State() {
	case StateBound:
		return r.Argument(), nil
	case StateFailed:
		return nil, xerrors.WithStackTrace(r.Err())
	default:
		return nil, xerrors.WithStackTrace(xerrors.NonRetryable(
			fmt.Errorf("%w: %T as %s", ErrUnsupportedType, v, expected),
			xerrors.WithName("ErrUnsupportedType"),
		))
	}
}

func (a *Arguments) UntypedNull() Argument {
	return a.untypedNull
}
