package bind

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/argbind/argbind/internal/types"
	"github.com/argbind/argbind/internal/value"
	"github.com/argbind/argbind/internal/xerrors"
)

var errTypeMismatch = errors.New("value does not match expected type")

// Builder turns a raw value into an argument. The value is nil when absent.
type Builder func(v any) (Argument, error)

type Entry struct {
	Kind    Kind
	Builder Builder
}

// Registry maps kinds to builders. It is never mutated after construction,
// so lookups need no synchronization.
type Registry struct {
	builders map[Kind]Builder
}

func NewRegistry(entries ...Entry) *Registry {
	builders := make(map[Kind]Builder, len(entries))
	for _, e := range entries {
		builders[e.Kind] = e.Builder
	}

	return &Registry{builders: builders}
}

// With returns a new registry with entries added on top of r.
func (r *Registry) With(entries ...Entry) *Registry {
	builders := make(map[Kind]Builder, len(r.builders)+len(entries))
	for k, b := range r.builders {
		builders[k] = b
	}
	for _, e := range entries {
		builders[e.Kind] = e.Builder
	}

	return &Registry{builders: builders}
}

func (r *Registry) Lookup(kind Kind) (Builder, bool) {
	b, has := r.builders[kind]

	return b, has
}

// BuiltIns covers every primitive kind, uuid, net.IP, url and the duration types.
var BuiltIns = NewRegistry(
	Of(KindBool, types.Bool, Statement.SetBool),
	Of(KindInt, types.Int64, func(stmt Statement, pos int, v int) error { return stmt.SetInt64(pos, int64(v)) }),
	Of(KindInt8, types.Int8, func(stmt Statement, pos int, v int8) error { return stmt.SetInt16(pos, int16(v)) }),
	Of(KindInt16, types.Int16, Statement.SetInt16),
	Of(KindInt32, types.Int32, Statement.SetInt32),
	Of(KindInt64, types.Int64, Statement.SetInt64),
	Of(KindUint, types.Numeric, stringify[uint]),
	Of(KindUint8, types.Int16, func(stmt Statement, pos int, v uint8) error { return stmt.SetInt16(pos, int16(v)) }),
	Of(KindUint16, types.Int32, func(stmt Statement, pos int, v uint16) error { return stmt.SetInt32(pos, int32(v)) }),
	Of(KindUint32, types.Int64, func(stmt Statement, pos int, v uint32) error { return stmt.SetInt64(pos, int64(v)) }),
	Of(KindUint64, types.Numeric, stringify[uint64]),
	Of(KindFloat32, types.Float, Statement.SetFloat32),
	Of(KindFloat64, types.Double, Statement.SetFloat64),
	Of(KindString, types.Text, Statement.SetString),
	Of(KindBytes, types.Bytes, Statement.SetBytes),
	Of(KindTime, types.Timestamp, Statement.SetTime),
	Of(KindUUID, types.UUID, func(stmt Statement, pos int, v uuid.UUID) error {
		return stmt.SetObject(pos, types.UUID, v)
	}),
	Of(KindIP, types.Text, stringify[net.IP]),
	Of(KindURL, types.Text, stringify[*url.URL]),
	Entry{Kind: KindDuration, Builder: durationBuilder},
	Entry{Kind: KindStdDuration, Builder: durationBuilder},
	Entry{Kind: KindProtoDuration, Builder: durationBuilder},
)

// Of makes a registry entry for values of type T written by binder.
// Absent values, including nil pointers and slices, are written as NULL of type t.
func Of[T any](kind Kind, t types.Type, binder func(stmt Statement, position int, v T) error) Entry {
	return Entry{
		Kind: kind,
		Builder: func(v any) (Argument, error) {
			if v == nil {
				return &builtInArgument[T]{wireType: t, binder: binder}, nil
			}
			x, ok := v.(T)
			if !ok {
				return nil, xerrors.WithStackTrace(fmt.Errorf("%w: %T is not %s", errTypeMismatch, v, kind))
			}

			return &builtInArgument[T]{wireType: t, binder: binder, value: x, present: !isNil(x)}, nil
		},
	}
}

func isNil(v any) bool {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func stringify[T any](stmt Statement, position int, v T) error {
	switch x := any(v).(type) {
	case uint:
		return stmt.SetString(position, strconv.FormatUint(uint64(x), 10))
	case uint64:
		return stmt.SetString(position, strconv.FormatUint(x, 10))
	case fmt.Stringer:
		return stmt.SetString(position, x.String())
	default:
		return stmt.SetString(position, fmt.Sprint(x))
	}
}

func text(s string) Argument {
	return &builtInArgument[string]{wireType: types.Text, binder: Statement.SetString, value: s, present: true}
}

// durationBuilder encodes eagerly, so precision and overflow errors surface on bind.
func durationBuilder(v any) (Argument, error) {
	d, err := asDuration(v)
	if err != nil {
		return nil, err
	}
	iv, err := value.Encode(d)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if iv == nil {
		return &builtInArgument[value.Interval]{wireType: types.Interval, binder: Statement.SetInterval}, nil
	}

	return &builtInArgument[value.Interval]{
		wireType: types.Interval,
		binder:   Statement.SetInterval,
		value:    *iv,
		present:  true,
	}, nil
}

func asDuration(v any) (*value.Duration, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil //nolint:nilnil
	case value.Duration:
		return &x, nil
	case time.Duration:
		d := value.FromStd(x)

		return &d, nil
	case *durationpb.Duration:
		d, err := value.FromProto(x)
		if err != nil {
			return nil, xerrors.WithStackTrace(err)
		}

		return d, nil
	default:
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: %T is not a duration", errTypeMismatch, v))
	}
}
