package xerrors

type nonRetryableError struct {
	name string
	err  error
}

func (e *nonRetryableError) Name() string {
	return "non-retryable/" + e.name
}

func (e *nonRetryableError) Type() Type {
	return TypeNonRetryable
}

func (e *nonRetryableError) Error() string {
	return e.err.Error()
}

func (e *nonRetryableError) Unwrap() error {
	return e.err
}

type NonRetryableErrorOption func(e *nonRetryableError)

func WithName(name string) NonRetryableErrorOption {
	return func(e *nonRetryableError) {
		e.name = name
	}
}

// NonRetryable marks err as permanent: repeating the call with the same input fails the same way.
func NonRetryable(err error, opts ...NonRetryableErrorOption) error {
	if err == nil {
		return nil
	}
	e := &nonRetryableError{
		name: "CUSTOM",
		err:  err,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

func IsRetryable(err error) bool {
	return TypeOf(err) == TypeRetryable
}
