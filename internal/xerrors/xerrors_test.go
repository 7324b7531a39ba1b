package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test")

func TestStackTraceError(t *testing.T) {
	for _, test := range []struct {
		error error
		text  string
	}{
		{
			error: WithStackTrace(fmt.Errorf("fmt.Errorf")),
			text:  "fmt.Errorf at `github.com/argbind/argbind/internal/xerrors.TestStackTraceError(xerrors_test.go:19)`",
		},
		{
			error: WithStackTrace(
				WithStackTrace(errors.New("errors.New")),
			),
			//nolint:lll
			text: "errors.New at `github.com/argbind/argbind/internal/xerrors.TestStackTraceError(xerrors_test.go:24)` at `github.com/argbind/argbind/internal/xerrors.TestStackTraceError(xerrors_test.go:23)`",
		},
	} {
		t.Run(test.text, func(t *testing.T) {
			require.Equal(t, test.text, test.error.Error())
		})
	}
	require.NoError(t, WithStackTrace(nil))
}

func TestNonRetryable(t *testing.T) {
	err := WithStackTrace(NonRetryable(fmt.Errorf("wrapped: %w", errTest), WithName("TEST")))
	require.ErrorIs(t, err, errTest)
	require.Equal(t, TypeNonRetryable, TypeOf(err))
	require.False(t, IsRetryable(err))

	var named interface{ Name() string }
	require.True(t, As(err, &named))
	require.Equal(t, "non-retryable/TEST", named.Name())

	require.NoError(t, NonRetryable(nil))
	require.Equal(t, TypeNoError, TypeOf(nil))
	require.Equal(t, TypeUndefined, TypeOf(errTest))
}

func TestJoin(t *testing.T) {
	other := errors.New("other")
	err := Join(errTest, NonRetryable(other))
	require.Equal(t, "test; other", err.Error())
	require.True(t, Is(err, other))
	require.True(t, Is(err, errors.New("unknown"), errTest))
	require.Equal(t, TypeNonRetryable, TypeOf(err))

	require.NoError(t, Join(nil, nil))
	require.Same(t, errTest, Join(nil, errTest))
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "non-retryable", TypeNonRetryable.String())
	require.Equal(t, "unknown error type 42", Type(42).String())
}
