package argbind

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/argbind/argbind/config"
	"github.com/argbind/argbind/internal/bind"
	"github.com/argbind/argbind/internal/types"
	"github.com/argbind/argbind/internal/value"
	"github.com/argbind/argbind/internal/xerrors"
)

var errPosition = errors.New("parameter position out of range")

var _ bind.Statement = (*driverStatement)(nil)

// driverStatement collects database/sql driver values, positions start at 1.
type driverStatement struct {
	format config.IntervalFormat
	values []any
}

func newDriverStatement(format config.IntervalFormat, n int) *driverStatement {
	return &driverStatement{
		format: format,
		values: make([]any, n),
	}
}

func (s *driverStatement) set(position int, v any) error {
	if position < 1 || position > len(s.values) {
		return xerrors.WithStackTrace(fmt.Errorf("%w: %d of %d", errPosition, position, len(s.values)))
	}
	s.values[position-1] = v

	return nil
}

func (s *driverStatement) SetNull(position int, _ types.Type) error {
	return s.set(position, nil)
}

func (s *driverStatement) SetBool(position int, v bool) error {
	return s.set(position, v)
}

func (s *driverStatement) SetInt16(position int, v int16) error {
	return s.set(position, int64(v))
}

func (s *driverStatement) SetInt32(position int, v int32) error {
	return s.set(position, int64(v))
}

func (s *driverStatement) SetInt64(position int, v int64) error {
	return s.set(position, v)
}

func (s *driverStatement) SetFloat32(position int, v float32) error {
	return s.set(position, float64(v))
}

func (s *driverStatement) SetFloat64(position int, v float64) error {
	return s.set(position, v)
}

func (s *driverStatement) SetString(position int, v string) error {
	return s.set(position, v)
}

func (s *driverStatement) SetBytes(position int, v []byte) error {
	return s.set(position, v)
}

func (s *driverStatement) SetTime(position int, v time.Time) error {
	return s.set(position, v)
}

func (s *driverStatement) SetInterval(position int, iv value.Interval) error {
	switch s.format {
	case config.IntervalBinary:
		b, err := iv.MarshalBinary()
		if err != nil {
			return xerrors.WithStackTrace(err)
		}

		return s.set(position, b)
	case config.IntervalMicroseconds:
		us, err := microseconds(iv)
		if err != nil {
			return xerrors.WithStackTrace(err)
		}

		return s.set(position, us)
	default:
		return s.set(position, iv.String())
	}
}

// microseconds folds months and days of iv into its microseconds.
func microseconds(iv value.Interval) (int64, error) {
	if iv.Months == 0 && iv.Days == 0 {
		return iv.Microseconds, nil
	}
	d, err := value.Decode(&iv)
	if err != nil {
		return 0, err
	}
	folded, err := value.Encode(d)
	if err != nil {
		return 0, err
	}

	return folded.Microseconds, nil
}

func (s *driverStatement) SetObject(position int, _ types.Type, v any) error {
	if valuer, ok := v.(driver.Valuer); ok {
		dv, err := valuer.Value()
		if err != nil {
			return xerrors.WithStackTrace(err)
		}

		return s.set(position, dv)
	}

	return s.set(position, v)
}
