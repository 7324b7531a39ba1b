package bind

import (
	"fmt"
	"reflect"

	"github.com/argbind/argbind/internal/types"
	"github.com/argbind/argbind/internal/xerrors"
)

// Argument is a value ready to be written into one positional parameter.
type Argument interface {
	WriteTo(position int, stmt Statement) error
	String() string
}

type binder[T any] func(stmt Statement, position int, v T) error

type builtInArgument[T any] struct {
	wireType types.Type
	binder   binder[T]
	value    T
	present  bool
}

func (a *builtInArgument[T]) WriteTo(position int, stmt Statement) error {
	if !a.present {
		if err := stmt.SetNull(position, a.wireType); err != nil {
			return xerrors.WithStackTrace(err)
		}

		return nil
	}
	if err := a.binder(stmt, position, a.value); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

func (a *builtInArgument[T]) String() string {
	if !a.present {
		return "NULL"
	}
	if s, ok := any(a.value).(fmt.Stringer); ok {
		return s.String()
	}
	if rv := reflect.ValueOf(a.value); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return fmt.Sprintf("{array of %s length %d}", rv.Type().Elem(), rv.Len())
	}

	return fmt.Sprint(a.value)
}

type nullArgument struct {
	wireType types.Type
}

// NullArgument writes a NULL of the given wire type whatever the position is.
func NullArgument(t types.Type) Argument {
	return nullArgument{wireType: t}
}

func (a nullArgument) WriteTo(position int, stmt Statement) error {
	if err := stmt.SetNull(position, a.wireType); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

func (a nullArgument) String() string {
	return "NULL"
}
