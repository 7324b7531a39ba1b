package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

// Buffer returns a reset buffer from the shared pool. Callers must Free it.
func Buffer() *buffer {
	b := buffersPool.Get().(*buffer) //nolint:forcetypeassert
	b.Reset()

	return b
}

func (b *buffer) Free() {
	buffersPool.Put(b)
}
