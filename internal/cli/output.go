package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// IntervalResult is the interval wire value printed by both commands.
type IntervalResult struct {
	Text         string `json:"text"`
	Months       int32  `json:"months"`
	Days         int32  `json:"days"`
	Microseconds int64  `json:"microseconds"`
	Binary       string `json:"binary"`
	OID          uint32 `json:"oid"`
}

// DurationResult is the duration printed by both commands.
type DurationResult struct {
	ISO     string `json:"iso"`
	Seconds int64  `json:"seconds"`
	Nanos   int32  `json:"nanos"`
	Go      string `json:"go,omitempty"`
}

type ConversionResult struct {
	Duration DurationResult `json:"duration"`
	Interval IntervalResult `json:"interval"`
}

func writeResult(w io.Writer, format string, r ConversionResult) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	}
	_, err := fmt.Fprintf(w, "interval:     %s\n"+
		"months:       %d\n"+
		"days:         %d\n"+
		"microseconds: %d\n"+
		"binary:       %s\n"+
		"duration:     %s\n",
		r.Interval.Text, r.Interval.Months, r.Interval.Days, r.Interval.Microseconds, r.Interval.Binary,
		r.Duration.ISO,
	)
	if err == nil && r.Duration.Go != "" {
		_, err = fmt.Fprintf(w, "go:           %s\n", r.Duration.Go)
	}

	return err
}
