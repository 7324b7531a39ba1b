package log

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

type fieldType int

const (
	invalidType fieldType = iota
	intType
	int64Type
	stringType
	boolType
	durationType
	errorType
	stringerType
	anyType
)

// Field is a typed key-value pair of log message.
type Field struct {
	ftype fieldType
	key   string

	vint  int64
	vstr  string
	vany  any
	vbool bool
}

func (f Field) Key() string {
	return f.key
}

// String renders field value for plain text loggers.
func (f Field) String() string {
	switch f.ftype {
	case intType, int64Type:
		return strconv.FormatInt(f.vint, 10)
	case stringType:
		return f.vstr
	case boolType:
		return strconv.FormatBool(f.vbool)
	case durationType:
		return time.Duration(f.vint).String()
	case errorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.vany.(error).Error() //nolint:forcetypeassert
	case stringerType:
		return f.vany.(fmt.Stringer).String() //nolint:forcetypeassert
	case anyType:
		if f.vany == nil {
			return "<nil>"
		}
		if v := reflect.ValueOf(f.vany); v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return "<nil>"
			}

			return fmt.Sprintf("%T(%v)", f.vany, v.Elem().Interface())
		}

		return fmt.Sprint(f.vany)
	default:
		panic(fmt.Sprintf("unknown field type %d of field %q", f.ftype, f.key))
	}
}

func Int(k string, v int) Field {
	return Field{ftype: intType, key: k, vint: int64(v)}
}

func Int64(k string, v int64) Field {
	return Field{ftype: int64Type, key: k, vint: v}
}

func String(k, v string) Field {
	return Field{ftype: stringType, key: k, vstr: v}
}

func Bool(k string, v bool) Field {
	return Field{ftype: boolType, key: k, vbool: v}
}

func Duration(k string, v time.Duration) Field {
	return Field{ftype: durationType, key: k, vint: int64(v)}
}

func Error(err error) Field {
	return Field{ftype: errorType, key: "error", vany: err}
}

// Stringer defers rendering of v until the message is written.
func Stringer(k string, v fmt.Stringer) Field {
	return Field{ftype: stringerType, key: k, vany: v}
}

func Any(k string, v any) Field {
	return Field{ftype: anyType, key: k, vany: v}
}
