package value

import (
	"math"

	"github.com/argbind/argbind/internal/xmath"
)

// Encode converts duration into interval wire value with zero months and days.
//
// A nil duration encodes to nil which must be written as NULL. Sub-microsecond
// remainders fail with ErrPrecision, spans which do not fit the wire fail with
// ErrOverflow. Nothing is ever truncated.
func Encode(d *Duration) (*Interval, error) {
	if d == nil {
		return nil, nil //nolint:nilnil
	}
	dd, err := DurationOf(d.Seconds, int64(d.Nanos))
	if err != nil {
		return nil, overflowError(*d, "has non-normalized nanoseconds")
	}
	if int64(dd.Nanos)%nanosecondsPerMicrosecond != 0 {
		return nil, precisionError(dd)
	}
	if days := dd.Seconds / secondsPerDay; days > math.MaxInt32 || days < math.MinInt32 {
		return nil, overflowError(dd, "exceeds 32-bit day count")
	}
	us, ok := dd.microseconds()
	if !ok {
		return nil, overflowError(dd, "exceeds 64-bit microseconds")
	}

	return &Interval{Microseconds: us}, nil
}

// microseconds borrows one second for negative spans, so values whose
// microsecond count is close to math.MinInt64 still fit.
func (d Duration) microseconds() (int64, bool) {
	seconds, fraction := d.Seconds, int64(d.Nanos)/nanosecondsPerMicrosecond
	if seconds < 0 && fraction > 0 {
		seconds++
		fraction -= microsecondsPerSecond
	}
	us, ok := xmath.MulExact(seconds, microsecondsPerSecond)
	if !ok {
		return 0, false
	}

	return xmath.AddExact(us, fraction)
}

// Decode converts interval wire value into duration. A nil interval is NULL and
// decodes to nil. Months are counted as 30 days, days as 24 hours.
func Decode(iv *Interval) (*Duration, error) {
	if iv == nil {
		return nil, nil //nolint:nilnil
	}

	return compose(int64(iv.Months), int64(iv.Days), iv.Microseconds)
}

// compose sums interval components into duration. Wire components are 32-bit
// for months and days so they cannot overflow, parsed text components are not.
func compose(months, days, us int64) (*Duration, error) {
	var totalDays, seconds int64
	monthDays, ok := xmath.MulExact(months, daysPerMonth)
	if ok {
		totalDays, ok = xmath.AddExact(monthDays, days)
	}
	if ok {
		seconds, ok = xmath.MulExact(totalDays, secondsPerDay)
	}
	if ok {
		seconds, ok = xmath.AddExact(seconds, xmath.FloorDiv(us, microsecondsPerSecond))
	}
	if !ok {
		return nil, rangeError("%d months %d days %d microseconds", months, days, us)
	}

	return &Duration{
		Seconds: seconds,
		Nanos:   int32(xmath.FloorMod(us, microsecondsPerSecond) * nanosecondsPerMicrosecond),
	}, nil
}

// DecodeText parses interval text and composes it into duration.
// Text components are accumulated in 64 bits, so extreme literals fail with ErrRange.
func DecodeText(s string) (*Duration, error) {
	p, err := parse(s)
	if err != nil {
		return nil, err
	}

	return compose(p.months, p.days, p.us)
}

// DecodeBinary decodes postgres binary interval. Nil input is NULL.
func DecodeBinary(b []byte) (*Duration, error) {
	if b == nil {
		return nil, nil //nolint:nilnil
	}
	var iv Interval
	if err := iv.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	return Decode(&iv)
}
