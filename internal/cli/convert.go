package cli

import (
	"encoding/hex"

	"github.com/argbind/argbind/internal/types"
	"github.com/argbind/argbind/internal/value"
)

func newResult(d value.Duration, iv value.Interval) (ConversionResult, error) {
	b, err := iv.MarshalBinary()
	if err != nil {
		return ConversionResult{}, err
	}
	r := ConversionResult{
		Duration: DurationResult{
			ISO:     d.String(),
			Seconds: d.Seconds,
			Nanos:   d.Nanos,
		},
		Interval: IntervalResult{
			Text:         iv.String(),
			Months:       iv.Months,
			Days:         iv.Days,
			Microseconds: iv.Microseconds,
			Binary:       hex.EncodeToString(b),
			OID:          types.Interval.OID(),
		},
	}
	if std, err := d.Std(); err == nil {
		r.Duration.Go = std.String()
	}

	return r, nil
}
