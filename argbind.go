package argbind

import (
	"time"

	"github.com/argbind/argbind/internal/bind"
	"github.com/argbind/argbind/internal/value"
)

type (
	// Duration is signed elapsed time: whole seconds and nanoseconds in [0, 1e9).
	Duration = value.Duration
	// Interval is postgres interval wire value.
	Interval = value.Interval
	Type     = bind.Type
	Argument = bind.Argument
	// Enum values are bound as text by the name of the active variant.
	Enum = bind.Enum
)

var (
	ErrPrecision       = value.ErrPrecision
	ErrOverflow        = value.ErrOverflow
	ErrRange           = value.ErrRange
	ErrSyntax          = value.ErrSyntax
	ErrUnsupportedType = bind.ErrUnsupportedType
)

// Any is the expected type which lets the value decide.
var Any = bind.Any

func TypeFor[T any]() Type {
	return bind.TypeFor[T]()
}

func Some[T any](v T) bind.Optional[T] {
	return bind.Some(v)
}

func None[T any]() bind.Optional[T] {
	return bind.None[T]()
}

func DurationOf(seconds, nanos int64) (Duration, error) {
	return value.DurationOf(seconds, nanos)
}

func FromStd(d time.Duration) Duration {
	return value.FromStd(d)
}

// Encode converts duration into interval with zero months and days. Nil is NULL.
func Encode(d *Duration) (*Interval, error) {
	return value.Encode(d)
}

// Decode composes interval into duration counting a month as 30 days. Nil is NULL.
func Decode(iv *Interval) (*Duration, error) {
	return value.Decode(iv)
}

func ParseInterval(s string) (Interval, error) {
	return value.ParseInterval(s)
}
