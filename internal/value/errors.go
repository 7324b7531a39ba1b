package value

import (
	"errors"
	"fmt"

	"github.com/argbind/argbind/internal/xerrors"
)

var (
	// ErrPrecision reports a duration with a sub-microsecond remainder.
	ErrPrecision = errors.New("duration is too precise for interval")

	// ErrOverflow reports a duration which cannot be written as interval.
	ErrOverflow = errors.New("duration overflows interval")

	// ErrRange reports an interval which cannot be read as duration.
	ErrRange = errors.New("interval overflows duration")

	// ErrSyntax reports malformed interval text or binary representation.
	ErrSyntax = errors.New("invalid interval syntax")
)

func precisionError(d Duration) error {
	return xerrors.WithStackTrace(xerrors.NonRetryable(
		fmt.Errorf("%w: %s has %d nanoseconds below microsecond",
			ErrPrecision, d, int64(d.Nanos)%nanosecondsPerMicrosecond,
		),
		xerrors.WithName("PRECISION"),
	), xerrors.WithSkipDepth(1))
}

func overflowError(d Duration, reason string) error {
	return xerrors.WithStackTrace(xerrors.NonRetryable(
		fmt.Errorf("%w: %s %s", ErrOverflow, d, reason),
		xerrors.WithName("OVERFLOW"),
	), xerrors.WithSkipDepth(1))
}

func rangeError(format string, args ...interface{}) error {
	return xerrors.WithStackTrace(xerrors.NonRetryable(
		fmt.Errorf("%w: "+format, append([]interface{}{ErrRange}, args...)...),
		xerrors.WithName("RANGE"),
	), xerrors.WithSkipDepth(1))
}

func syntaxError(s string, reason string) error {
	return xerrors.WithStackTrace(xerrors.NonRetryable(
		fmt.Errorf("%w %q: %s", ErrSyntax, s, reason),
		xerrors.WithName("SYNTAX"),
	), xerrors.WithSkipDepth(1))
}
