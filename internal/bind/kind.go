package bind

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/argbind/argbind/internal/value"
)

// Kind tags one supported host type. Lookup by kind is exact: a named type
// over int64 is KindOther, not KindInt64, so it never picks the int64 builder.
type Kind uint8

const (
	KindAny = Kind(iota)
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindBytes
	KindTime
	KindUUID
	KindIP
	KindURL
	KindDuration
	KindStdDuration
	KindProtoDuration
	KindOptional
	KindPointer
	KindOther
)

var kindNames = [...]string{
	KindAny:           "any",
	KindBool:          "bool",
	KindInt:           "int",
	KindInt8:          "int8",
	KindInt16:         "int16",
	KindInt32:         "int32",
	KindInt64:         "int64",
	KindUint:          "uint",
	KindUint8:         "uint8",
	KindUint16:        "uint16",
	KindUint32:        "uint32",
	KindUint64:        "uint64",
	KindFloat32:       "float32",
	KindFloat64:       "float64",
	KindString:        "string",
	KindBytes:         "[]byte",
	KindTime:          "time.Time",
	KindUUID:          "uuid.UUID",
	KindIP:            "net.IP",
	KindURL:           "*url.URL",
	KindDuration:      "value.Duration",
	KindStdDuration:   "time.Duration",
	KindProtoDuration: "*durationpb.Duration",
	KindOptional:      "optional",
	KindPointer:       "pointer",
	KindOther:         "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

//nolint:gocyclo
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindAny
	case bool:
		return KindBool
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindString
	case []byte:
		return KindBytes
	case time.Time:
		return KindTime
	case uuid.UUID:
		return KindUUID
	case net.IP:
		return KindIP
	case *url.URL:
		return KindURL
	case value.Duration:
		return KindDuration
	case time.Duration:
		return KindStdDuration
	case *durationpb.Duration:
		return KindProtoDuration
	case optional:
		return KindOptional
	}
	if reflect.TypeOf(v).Kind() == reflect.Pointer {
		return KindPointer
	}

	return KindOther
}

// Type is an expected type of bound value. Elem is the declared element
// type of optional and pointer kinds.
type Type struct {
	Kind Kind
	Elem *Type
}

// Any is the unconstrained expected type: resolution takes the type of the value.
var Any = Type{Kind: KindAny}

func (t Type) String() string {
	if t.Elem != nil {
		return t.Kind.String() + "[" + t.Elem.String() + "]"
	}

	return t.Kind.String()
}

func TypeOf(v any) Type {
	switch kind := KindOf(v); kind {
	case KindOptional:
		elem := v.(optional).elemType() //nolint:forcetypeassert

		return Type{Kind: kind, Elem: &elem}
	case KindPointer:
		elem := typeOfReflect(reflect.TypeOf(v).Elem())

		return Type{Kind: kind, Elem: &elem}
	default:
		return Type{Kind: kind}
	}
}

func TypeFor[T any]() Type {
	return typeOfReflect(reflect.TypeOf((*T)(nil)).Elem())
}

func typeOfReflect(rt reflect.Type) Type {
	return TypeOf(reflect.Zero(rt).Interface())
}
