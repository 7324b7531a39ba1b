package bind

type State uint8

const (
	StateDeclined = State(iota)
	StateBound
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBound:
		return "bound"
	case StateFailed:
		return "failed"
	default:
		return "declined"
	}
}

// Result of one factory. Declined means the factory does not apply and the
// next one may be tried, Failed stops resolution.
type Result struct {
	state    State
	argument Argument
	err      error
}

func Bound(a Argument) Result {
	return Result{state: StateBound, argument: a}
}

func Declined() Result {
	return Result{}
}

func Failed(err error) Result {
	return Result{state: StateFailed, err: err}
}

func (r Result) State() State {
	return r.state
}

func (r Result) Argument() Argument {
	return r.argument
}

func (r Result) Err() error {
	return r.err
}
