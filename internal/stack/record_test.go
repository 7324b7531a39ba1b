package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct{}

func (recorder) record() string {
	return Record(0)
}

func TestRecord(t *testing.T) {
	require.Equal(t,
		"github.com/argbind/argbind/internal/stack.TestRecord(record_test.go:18)",
		Record(0),
	)
	require.Equal(t,
		"github.com/argbind/argbind/internal/stack.recorder.record(record_test.go:12)",
		recorder{}.record(),
	)
	func() {
		require.Equal(t,
			"github.com/argbind/argbind/internal/stack.TestRecord(record_test.go:27)",
			Record(0),
		)
	}()
}

func TestTrimLambdas(t *testing.T) {
	for _, tt := range []struct {
		name string
		exp  string
	}{
		{name: "a/b.F", exp: "a/b.F"},
		{name: "a/b.F.func1", exp: "a/b.F"},
		{name: "a/b.(*T).M.func1.2", exp: "a/b.(*T).M"},
		{name: "main.main", exp: "main.main"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, trimLambdas(tt.name))
		})
	}
}
