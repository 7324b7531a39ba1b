package xerrors

import "fmt"

// Type reports which error type
type Type uint8

const (
	TypeUndefined = Type(iota)
	TypeNoError
	TypeNonRetryable
	TypeRetryable
)

func (t Type) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeNoError:
		return "no error"
	case TypeNonRetryable:
		return "non-retryable"
	case TypeRetryable:
		return "retryable"
	default:
		return fmt.Sprintf("unknown error type %d", t)
	}
}

// TypeOf reports the type of err. Errors without an explicit mark are undefined.
func TypeOf(err error) Type {
	if err == nil {
		return TypeNoError
	}
	var typed interface {
		Type() Type
	}
	if As(err, &typed) {
		return typed.Type()
	}

	return TypeUndefined
}
