package xerrors

import (
	"github.com/argbind/argbind/internal/xstring"
)

// Join collects non-nil errors. It returns nil when nothing failed and the
// error itself when only one did.
func Join(errs ...error) error {
	joined := make(joinedErrors, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			joined = append(joined, err)
		}
	}
	switch len(joined) {
	case 0:
		return nil
	case 1:
		return joined[0]
	default:
		return joined
	}
}

type joinedErrors []error

func (errs joinedErrors) Error() string {
	b := xstring.Buffer()
	defer b.Free()
	for i, err := range errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}

	return b.String()
}

func (errs joinedErrors) As(target interface{}) bool {
	for _, err := range errs {
		if As(err, target) {
			return true
		}
	}

	return false
}

func (errs joinedErrors) Is(target error) bool {
	for _, err := range errs {
		if Is(err, target) {
			return true
		}
	}

	return false
}

func (errs joinedErrors) Unwrap() []error {
	return errs
}
