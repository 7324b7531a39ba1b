package config

import (
	"github.com/argbind/argbind/internal/bind"
	"github.com/argbind/argbind/log"
)

// IntervalFormat selects the driver value written for interval parameters.
type IntervalFormat uint8

const (
	// IntervalText writes postgres interval output, e.g. `-2 days -03:00:00`.
	IntervalText = IntervalFormat(iota)
	// IntervalBinary writes 16 bytes of postgres binary interval.
	IntervalBinary
	// IntervalMicroseconds writes int64 microseconds for engines without interval type.
	IntervalMicroseconds
)

func (f IntervalFormat) String() string {
	switch f {
	case IntervalBinary:
		return "binary"
	case IntervalMicroseconds:
		return "microseconds"
	default:
		return "text"
	}
}

// Config contains binding configuration options.
type Config interface {
	// Logger receives bind events. Messages are written with level and names in context.
	Logger() log.Logger

	// Arguments is the resolution chain used for every bound value.
	Arguments() *bind.Arguments

	// IntervalFormat is the driver representation of intervals.
	IntervalFormat() IntervalFormat
}

type config struct {
	logger         log.Logger
	bindOptions    []bind.Option
	arguments      *bind.Arguments
	intervalFormat IntervalFormat
}

func (c *config) Logger() log.Logger {
	return c.logger
}

func (c *config) Arguments() *bind.Arguments {
	return c.arguments
}

func (c *config) IntervalFormat() IntervalFormat {
	return c.intervalFormat
}

type Option func(c *config)

func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithFactory registers factory in front of the ones registered before.
func WithFactory(f bind.Factory) Option {
	return func(c *config) {
		c.bindOptions = append(c.bindOptions, bind.WithFactory(f))
	}
}

// WithRegistry replaces built-in builders.
func WithRegistry(r *bind.Registry) Option {
	return func(c *config) {
		c.bindOptions = append(c.bindOptions, bind.WithRegistry(r))
	}
}

// WithUntypedNull sets the argument bound for nil values of unknown type.
func WithUntypedNull(a bind.Argument) Option {
	return func(c *config) {
		c.bindOptions = append(c.bindOptions, bind.WithUntypedNull(a))
	}
}

func WithIntervalFormat(f IntervalFormat) Option {
	return func(c *config) {
		c.intervalFormat = f
	}
}

func New(opts ...Option) Config {
	c := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(c)
		}
	}
	c.arguments = bind.NewArguments(c.bindOptions...)

	return c
}

func defaultConfig() *config {
	return &config{
		logger:         log.Nop(),
		intervalFormat: IntervalText,
	}
}
