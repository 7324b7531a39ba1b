package bind

import (
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/argbind/argbind/internal/value"
)

type seconds int64

type point struct {
	x, y int
}

func TestKindOf(t *testing.T) {
	for _, tt := range []struct {
		name string
		v    any
		kind Kind
	}{
		{name: "nil", v: nil, kind: KindAny},
		{name: "bool", v: true, kind: KindBool},
		{name: "int", v: 1, kind: KindInt},
		{name: "int64", v: int64(1), kind: KindInt64},
		{name: "uint8", v: uint8(1), kind: KindUint8},
		{name: "named int64", v: seconds(1), kind: KindOther},
		{name: "float32", v: float32(1), kind: KindFloat32},
		{name: "string", v: "", kind: KindString},
		{name: "bytes", v: []byte{}, kind: KindBytes},
		{name: "time", v: time.Time{}, kind: KindTime},
		{name: "uuid", v: uuid.UUID{}, kind: KindUUID},
		{name: "ip", v: net.IPv4(127, 0, 0, 1), kind: KindIP},
		{name: "url", v: &url.URL{}, kind: KindURL},
		{name: "duration", v: value.Duration{}, kind: KindDuration},
		{name: "std duration", v: time.Second, kind: KindStdDuration},
		{name: "proto duration", v: durationpb.New(time.Second), kind: KindProtoDuration},
		{name: "nil proto duration", v: (*durationpb.Duration)(nil), kind: KindProtoDuration},
		{name: "optional", v: Some(1), kind: KindOptional},
		{name: "pointer", v: new(int), kind: KindPointer},
		{name: "struct", v: point{}, kind: KindOther},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, KindOf(tt.v))
		})
	}
}

func TestTypeFor(t *testing.T) {
	require.Equal(t, Any, TypeFor[any]())
	require.Equal(t, Type{Kind: KindInt}, TypeFor[int]())
	require.Equal(t, "pointer[value.Duration]", TypeFor[*value.Duration]().String())
	require.Equal(t, "optional[string]", TypeFor[Optional[string]]().String())
	require.Equal(t, "optional[pointer[int]]", TypeFor[Optional[*int]]().String())
	require.Equal(t, TypeFor[Optional[string]](), TypeOf(None[string]()))
	require.Equal(t, "Kind(200)", Kind(200).String())
}
