package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/argbind/argbind/internal/bind"
	"github.com/argbind/argbind/internal/types"
	"github.com/argbind/argbind/log"
)

func TestDefaults(t *testing.T) {
	c := New()
	require.Equal(t, log.Nop(), c.Logger())
	require.Equal(t, IntervalText, c.IntervalFormat())
	require.NotNil(t, c.Arguments())
	require.Equal(t, "NULL", c.Arguments().UntypedNull().String())
}

func TestOptions(t *testing.T) {
	declined := 0
	c := New(
		WithIntervalFormat(IntervalMicroseconds),
		WithFactory(bind.FactoryFunc(func(bind.Type, any, *bind.Arguments) bind.Result {
			declined++

			return bind.Declined()
		})),
		WithRegistry(bind.NewRegistry()),
		WithUntypedNull(bind.NullArgument(types.Text)),
		nil,
	)
	require.Equal(t, IntervalMicroseconds, c.IntervalFormat())
	require.Equal(t, "microseconds", c.IntervalFormat().String())

	_, err := c.Arguments().FindFor(bind.Any, "text")
	require.ErrorIs(t, err, bind.ErrUnsupportedType)
	require.Equal(t, 1, declined)

	a, err := c.Arguments().FindFor(bind.Any, nil)
	require.NoError(t, err)
	require.Equal(t, bind.NullArgument(types.Text), a)
}
