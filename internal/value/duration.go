package value

import (
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/argbind/argbind/internal/xmath"
	"github.com/argbind/argbind/internal/xstring"
)

// Duration is a signed elapsed time with nanosecond resolution.
//
// Nanos is always in [0, 1e9) and is added to Seconds, so the sign of
// the span is the sign of Seconds: -1.5s is {Seconds: -2, Nanos: 500000000}.
// The range is wider than time.Duration which covers only ±292 years.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// DurationOf normalizes nanos into [0, 1e9) carrying whole seconds into the seconds part.
func DurationOf(seconds, nanos int64) (Duration, error) {
	s, ok := xmath.AddExact(seconds, xmath.FloorDiv(nanos, nanosecondsPerSecond))
	if !ok {
		return Duration{}, rangeError("%d seconds and %d nanoseconds", seconds, nanos)
	}

	return Duration{
		Seconds: s,
		Nanos:   int32(xmath.FloorMod(nanos, nanosecondsPerSecond)),
	}, nil
}

func Seconds(s int64) Duration {
	return Duration{Seconds: s}
}

func Minutes(m int32) Duration {
	return Duration{Seconds: int64(m) * secondsPerMinute}
}

func Hours(h int32) Duration {
	return Duration{Seconds: int64(h) * secondsPerHour}
}

func Days(d int32) Duration {
	return Duration{Seconds: int64(d) * secondsPerDay}
}

func Milliseconds(ms int64) Duration {
	return Duration{
		Seconds: xmath.FloorDiv(ms, 1000),
		Nanos:   int32(xmath.FloorMod(ms, 1000) * 1e6),
	}
}

func Microseconds(us int64) Duration {
	return Duration{
		Seconds: xmath.FloorDiv(us, microsecondsPerSecond),
		Nanos:   int32(xmath.FloorMod(us, microsecondsPerSecond) * nanosecondsPerMicrosecond),
	}
}

func Nanoseconds(ns int64) Duration {
	return Duration{
		Seconds: xmath.FloorDiv(ns, nanosecondsPerSecond),
		Nanos:   int32(xmath.FloorMod(ns, nanosecondsPerSecond)),
	}
}

// FromStd converts time.Duration. Every time.Duration is representable.
func FromStd(d time.Duration) Duration {
	return Nanoseconds(int64(d))
}

// FromProto converts protobuf duration where seconds and nanos share the sign.
func FromProto(p *durationpb.Duration) (*Duration, error) {
	if p == nil {
		return nil, nil //nolint:nilnil
	}
	d, err := DurationOf(p.GetSeconds(), int64(p.GetNanos()))
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// Add returns d+other or ErrRange if seconds overflow.
func (d Duration) Add(other Duration) (Duration, error) {
	s, ok := xmath.AddExact(d.Seconds, other.Seconds)
	if !ok {
		return Duration{}, rangeError("%s + %s", d, other)
	}
	nanos := int64(d.Nanos) + int64(other.Nanos)
	if nanos >= nanosecondsPerSecond {
		nanos -= nanosecondsPerSecond
		if s, ok = xmath.AddExact(s, 1); !ok {
			return Duration{}, rangeError("%s + %s", d, other)
		}
	}

	return Duration{Seconds: s, Nanos: int32(nanos)}, nil
}

// Neg returns -d or ErrRange for the single value whose negation does not fit.
func (d Duration) Neg() (Duration, error) {
	if d.Nanos == 0 {
		if d.Seconds == math.MinInt64 {
			return Duration{}, rangeError("-(%s)", d)
		}

		return Duration{Seconds: -d.Seconds}, nil
	}

	return Duration{
		Seconds: -d.Seconds - 1,
		Nanos:   int32(nanosecondsPerSecond) - d.Nanos,
	}, nil
}

func (d Duration) IsZero() bool {
	return d.Seconds == 0 && d.Nanos == 0
}

func (d Duration) IsNegative() bool {
	return d.Seconds < 0
}

// Std converts d to time.Duration or returns ErrRange outside of ±292 years.
func (d Duration) Std() (time.Duration, error) {
	seconds, nanos := d.Seconds, int64(d.Nanos)
	if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= nanosecondsPerSecond
	}
	ns, ok := xmath.MulExact(seconds, nanosecondsPerSecond)
	if ok {
		ns, ok = xmath.AddExact(ns, nanos)
	}
	if !ok {
		return 0, rangeError("%s does not fit time.Duration", d)
	}

	return time.Duration(ns), nil
}

// Proto converts d to protobuf duration. Values outside of protobuf's
// ±10000 years are still converted, durationpb.CheckValid reports them.
func (d Duration) Proto() *durationpb.Duration {
	seconds, nanos := d.Seconds, d.Nanos
	if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= int32(nanosecondsPerSecond)
	}

	return &durationpb.Duration{Seconds: seconds, Nanos: nanos}
}

// magnitude returns absolute value of d as unsigned seconds and nanos.
func (d Duration) magnitude() (seconds uint64, nanos uint32) {
	if d.Seconds >= 0 {
		return uint64(d.Seconds), uint32(d.Nanos)
	}
	if d.Nanos == 0 {
		return uint64(^d.Seconds) + 1, 0
	}

	return uint64(^d.Seconds), uint32(nanosecondsPerSecond) - uint32(d.Nanos)
}

// String renders ISO-8601 duration with days, e.g. `P1DT15H` or `-P2DT3H`.
func (d Duration) String() string {
	buffer := xstring.Buffer()
	defer buffer.Free()
	if d.IsNegative() {
		buffer.WriteByte('-')
	}
	buffer.WriteByte('P')
	seconds, nanos := d.magnitude()
	if seconds == 0 && nanos == 0 {
		buffer.WriteString("T0S")

		return buffer.String()
	}
	if days := seconds / uint64(secondsPerDay); days > 0 {
		seconds -= days * uint64(secondsPerDay)
		buffer.WriteString(strconv.FormatUint(days, 10))
		buffer.WriteByte('D')
	}
	if seconds == 0 && nanos == 0 {
		return buffer.String()
	}
	buffer.WriteByte('T')
	if hours := seconds / uint64(secondsPerHour); hours > 0 {
		seconds -= hours * uint64(secondsPerHour)
		buffer.WriteString(strconv.FormatUint(hours, 10))
		buffer.WriteByte('H')
	}
	if minutes := seconds / uint64(secondsPerMinute); minutes > 0 {
		seconds -= minutes * uint64(secondsPerMinute)
		buffer.WriteString(strconv.FormatUint(minutes, 10))
		buffer.WriteByte('M')
	}
	if seconds > 0 || nanos > 0 {
		buffer.WriteString(strconv.FormatUint(seconds, 10))
		appendFraction(buffer, uint64(nanos), 9)
		buffer.WriteByte('S')
	}

	return buffer.String()
}

type byteWriter interface {
	WriteByte(c byte) error
	WriteString(s string) (int, error)
}

// appendFraction writes `.digits` of fraction with given width trimming trailing zeros.
func appendFraction(w byteWriter, fraction uint64, width int) {
	if fraction == 0 {
		return
	}
	digits := strconv.FormatUint(fraction, 10)
	for len(digits) < width {
		digits = "0" + digits
	}
	end := len(digits)
	for end > 0 && digits[end-1] == '0' {
		end--
	}
	_ = w.WriteByte('.')
	_, _ = w.WriteString(digits[:end])
}
