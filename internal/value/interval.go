package value

import (
	"encoding/binary"
	"strconv"

	"github.com/argbind/argbind/internal/xstring"
)

const intervalBinarySize = 16

// Interval is the wire representation of postgres interval.
type Interval struct {
	Months       int32
	Days         int32
	Microseconds int64
}

// String renders interval the way postgres prints it with IntervalStyle=postgres.
func (iv Interval) String() string {
	buffer := xstring.Buffer()
	defer buffer.Free()

	var (
		isZero   = true
		isBefore = false
	)
	appendPart := func(v int64, unit string) {
		if v == 0 {
			return
		}
		if !isZero {
			buffer.WriteByte(' ')
		}
		if isBefore && v > 0 {
			buffer.WriteByte('+')
		}
		buffer.WriteString(strconv.FormatInt(v, 10))
		buffer.WriteByte(' ')
		buffer.WriteString(unit)
		if v != 1 {
			buffer.WriteByte('s')
		}
		isBefore = v < 0
		isZero = false
	}
	appendPart(int64(iv.Months)/monthsPerYear, "year")
	appendPart(int64(iv.Months)%monthsPerYear, "mon")
	appendPart(int64(iv.Days), "day")

	if isZero || iv.Microseconds != 0 {
		if !isZero {
			buffer.WriteByte(' ')
		}
		us := uint64(iv.Microseconds)
		switch {
		case iv.Microseconds < 0:
			buffer.WriteByte('-')
			us = ^us + 1
		case isBefore:
			buffer.WriteByte('+')
		}
		seconds := us / uint64(microsecondsPerSecond)
		hours := seconds / uint64(secondsPerHour)
		minutes := seconds / uint64(secondsPerMinute) % 60
		appendTwoDigits(buffer, hours)
		buffer.WriteByte(':')
		appendTwoDigits(buffer, minutes)
		buffer.WriteByte(':')
		appendTwoDigits(buffer, seconds%60)
		appendFraction(buffer, us%uint64(microsecondsPerSecond), 6)
	}

	return buffer.String()
}

func appendTwoDigits(w byteWriter, v uint64) {
	if v < 10 {
		_ = w.WriteByte('0')
	}
	_, _ = w.WriteString(strconv.FormatUint(v, 10))
}

// MarshalBinary encodes interval as postgres interval_send does:
// int64 microseconds, int32 days, int32 months, all big-endian.
func (iv Interval) MarshalBinary() ([]byte, error) {
	b := make([]byte, intervalBinarySize)
	binary.BigEndian.PutUint64(b[0:8], uint64(iv.Microseconds))
	binary.BigEndian.PutUint32(b[8:12], uint32(iv.Days))
	binary.BigEndian.PutUint32(b[12:16], uint32(iv.Months))

	return b, nil
}

func (iv *Interval) UnmarshalBinary(b []byte) error {
	if len(b) != intervalBinarySize {
		return syntaxError(xstring.FromBytes(b), "binary interval must be "+strconv.Itoa(intervalBinarySize)+" bytes")
	}
	iv.Microseconds = int64(binary.BigEndian.Uint64(b[0:8]))
	iv.Days = int32(binary.BigEndian.Uint32(b[8:12]))
	iv.Months = int32(binary.BigEndian.Uint32(b[12:16]))

	return nil
}
