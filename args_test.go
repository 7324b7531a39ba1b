package argbind

import (
	"context"
	"database/sql"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/argbind/argbind/config"
	"github.com/argbind/argbind/internal/bind"
	"github.com/argbind/argbind/internal/types"
	"github.com/argbind/argbind/internal/value"
	"github.com/argbind/argbind/internal/xerrors"
	"github.com/argbind/argbind/internal/xtest"
)

type weekday int

func (d weekday) EnumName() string {
	return [...]string{"SUNDAY", "MONDAY"}[d]
}

func TestArgs(t *testing.T) {
	id := uuid.MustParse("9d1b0f6e-4a1c-4c4e-8d0a-5c8d9b8f2e11")
	now := time.Date(2024, 2, 29, 13, 14, 15, 0, time.UTC)

	args, err := Args(context.Background(), config.New(config.WithLogger(xtest.Logger(t))),
		int8(-1),
		uint64(math.MaxUint64),
		float32(0.5),
		"text",
		[]byte{1, 2},
		now,
		id,
		weekday(1),
		Some(int16(3)),
		None[string](),
		nil,
		90*time.Minute,
		sql.Named("period", value.Days(-2)),
	)
	require.NoError(t, err)
	require.Equal(t, []any{
		int64(-1),
		"18446744073709551615",
		float64(0.5),
		"text",
		[]byte{1, 2},
		now,
		"9d1b0f6e-4a1c-4c4e-8d0a-5c8d9b8f2e11",
		"MONDAY",
		int64(3),
		nil,
		nil,
		"01:30:00",
		sql.Named("period", "-48:00:00"),
	}, args)
}

func TestArgsIntervalFormats(t *testing.T) {
	d := value.Seconds(-(2*86400 + 3*3600))
	for _, tt := range []struct {
		format config.IntervalFormat
		exp    any
	}{
		{format: config.IntervalText, exp: "-51:00:00"},
		{format: config.IntervalMicroseconds, exp: int64(-183_600_000_000)},
		{format: config.IntervalBinary, exp: []byte{0xff, 0xff, 0xff, 0xd5, 0x40, 0x96, 0x54, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}},
	} {
		t.Run(tt.format.String(), func(t *testing.T) {
			args, err := Args(context.Background(), config.New(config.WithIntervalFormat(tt.format)), d)
			require.NoError(t, err)
			require.Equal(t, []any{tt.exp}, args)
		})
	}
}

func TestArgsReportsEveryFailure(t *testing.T) {
	_, err := Args(context.Background(), config.New(config.WithLogger(xtest.Logger(t))),
		1, struct{}{}, value.Nanoseconds(1), "ok",
	)
	require.ErrorIs(t, err, ErrUnsupportedType)
	require.ErrorIs(t, err, ErrPrecision)
	require.ErrorContains(t, err, "argument 2")
	require.ErrorContains(t, err, "argument 3")
	require.False(t, xerrors.IsRetryable(err))
	require.Equal(t, xerrors.TypeNonRetryable, xerrors.TypeOf(err))
}

func TestResolve(t *testing.T) {
	a, err := Resolve(config.New(), TypeFor[*Duration](), nil)
	require.NoError(t, err)
	require.Equal(t, "NULL", a.String())

	stmt := newDriverStatement(config.IntervalText, 1)
	require.NoError(t, a.WriteTo(1, stmt))
	require.Equal(t, []any{nil}, stmt.values)
}

func TestDriverStatement(t *testing.T) {
	stmt := newDriverStatement(config.IntervalMicroseconds, 2)
	require.ErrorIs(t, stmt.SetBool(0, true), errPosition)
	require.ErrorIs(t, stmt.SetNull(3, types.Null), errPosition)

	require.NoError(t, stmt.SetInterval(1, value.Interval{Months: 1, Days: -1, Microseconds: 1}))
	require.NoError(t, stmt.SetObject(2, types.Other, bind.Some(1)))
	require.Equal(t, []any{int64(29*86400*1e6 + 1), bind.Some(1)}, stmt.values)

	require.ErrorIs(t, stmt.SetInterval(1, value.Interval{Months: math.MaxInt32, Days: math.MaxInt32}), ErrOverflow)
}
