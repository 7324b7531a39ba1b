package bind

import (
	"time"

	"github.com/argbind/argbind/internal/types"
	"github.com/argbind/argbind/internal/value"
)

//go:generate mockgen -destination statement_mock_test.go -package bind -write_package_comment=false . Statement

// Statement is a sink of positional parameters. Implementations perform the
// actual wire write, arguments only choose which setter to call.
type Statement interface {
	SetNull(position int, t types.Type) error
	SetBool(position int, v bool) error
	SetInt16(position int, v int16) error
	SetInt32(position int, v int32) error
	SetInt64(position int, v int64) error
	SetFloat32(position int, v float32) error
	SetFloat64(position int, v float64) error
	SetString(position int, v string) error
	SetBytes(position int, v []byte) error
	SetTime(position int, v time.Time) error
	SetInterval(position int, v value.Interval) error
	SetObject(position int, t types.Type, v any) error
}
