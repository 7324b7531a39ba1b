package argbind

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/argbind/argbind/internal/value"
	"github.com/argbind/argbind/internal/xerrors"
	"github.com/argbind/argbind/internal/xstring"
)

var errUnsupportedScan = errors.New("unsupported interval source")

var (
	_ sql.Scanner   = (*NullDuration)(nil)
	_ driver.Valuer = NullDuration{}
)

// NullDuration is a duration column which may be NULL.
//
// Scan accepts interval text (postgres, verbose, ISO-8601 or unit words),
// 16 bytes of postgres binary interval and int64 microseconds.
type NullDuration struct {
	Duration Duration
	Valid    bool
}

func (n *NullDuration) Scan(src any) error {
	var (
		d   *Duration
		err error
	)
	switch x := src.(type) {
	case nil:
		*n = NullDuration{}

		return nil
	case string:
		d, err = value.DecodeText(x)
	case []byte:
		d, err = value.DecodeText(xstring.FromBytes(x))
		if err != nil && len(x) == 16 && xerrors.Is(err, value.ErrSyntax) {
			d, err = value.DecodeBinary(x)
		}
	case int64:
		d, err = value.Decode(&Interval{Microseconds: x})
	default:
		err = xerrors.NonRetryable(fmt.Errorf("%w: %T", errUnsupportedScan, src))
	}
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	n.Duration, n.Valid = *d, true

	return nil
}

// Value writes interval text, nil when not valid.
func (n NullDuration) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	iv, err := value.Encode(&n.Duration)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return iv.String(), nil
}
