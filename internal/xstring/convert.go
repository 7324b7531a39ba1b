package xstring

import (
	"unsafe"
)

func FromBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b))
}
