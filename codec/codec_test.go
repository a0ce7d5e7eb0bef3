package codec

import (
	"math"
	"testing"

	"github.com/gowire/protolite/wire"
)

func roundTripBuffer(t *testing.T, c Codec, v interface{}) *wire.WireBuffer {
	t.Helper()
	buf := wire.NewWireBuffer()
	if err := c.Encode(v, buf); err != nil {
		t.Fatalf("encode %v: %v", v, err)
	}
	return wire.NewWireBufferFromBytes(buf.WrittenBytes())
}

func roundTrip(t *testing.T, c Codec, v interface{}) interface{} {
	t.Helper()
	buf := wire.NewWireBuffer()
	if err := c.Encode(v, buf); err != nil {
		t.Fatalf("encode %v: %v", v, err)
	}
	if got, want := buf.WrittenLength(), c.Length(v); got != want {
		t.Errorf("Length(%v) = %d, wrote %d bytes", v, want, got)
	}
	buf.Seek(0)
	got, err := c.Decode(buf)
	if err != nil {
		t.Fatalf("decode after encoding %v: %v", v, err)
	}
	return got
}

func TestPrimitiveRoundTrips(t *testing.T) {
	if got := roundTrip(t, BoolCodec(), true); got != true {
		t.Errorf("bool: got %v", got)
	}
	if got := roundTrip(t, Int32Codec(), int32(-42)); got != int32(-42) {
		t.Errorf("int32: got %v", got)
	}
	if got := roundTrip(t, Int64Codec(), int64(-1)); got != int64(-1) {
		t.Errorf("int64: got %v", got)
	}
	if got := roundTrip(t, Uint32Codec(), uint32(1<<32-1)); got != uint32(1<<32-1) {
		t.Errorf("uint32: got %v", got)
	}
	if got := roundTrip(t, Uint64Codec(), uint64(1<<64-1)); got != uint64(1<<64-1) {
		t.Errorf("uint64: got %v", got)
	}
	if got := roundTrip(t, Sint32Codec(), int32(-65535)); got != int32(-65535) {
		t.Errorf("sint32: got %v", got)
	}
	if got := roundTrip(t, Sint64Codec(), int64(-65535)); got != int64(-65535) {
		t.Errorf("sint64: got %v", got)
	}
	if got := roundTrip(t, Fixed32Codec(), uint32(0xDEADBEEF)); got != uint32(0xDEADBEEF) {
		t.Errorf("fixed32: got %v", got)
	}
	if got := roundTrip(t, Fixed64Codec(), uint64(1<<63)); got != uint64(1<<63) {
		t.Errorf("fixed64: got %v", got)
	}
	if got := roundTrip(t, Sfixed32Codec(), int32(-2147483648)); got != int32(-2147483648) {
		t.Errorf("sfixed32: got %v", got)
	}
	if got := roundTrip(t, Sfixed64Codec(), int64(-1)); got != int64(-1) {
		t.Errorf("sfixed64: got %v", got)
	}
	if got := roundTrip(t, FloatCodec(), float32(3.5)); got != float32(3.5) {
		t.Errorf("float: got %v", got)
	}
	if got := roundTrip(t, DoubleCodec(), math.Pi); got != math.Pi {
		t.Errorf("double: got %v", got)
	}
	if got := roundTrip(t, EnumCodec(), int32(7)); got != int32(7) {
		t.Errorf("enum: got %v", got)
	}
	if got := roundTrip(t, StringCodec(), "hello"); got != "hello" {
		t.Errorf("string: got %v", got)
	}
	got := roundTrip(t, BytesCodec(), []byte{1, 2, 3})
	gotBytes, ok := got.([]byte)
	if !ok || len(gotBytes) != 3 || gotBytes[0] != 1 {
		t.Errorf("bytes: got %v", got)
	}
}

func TestFixedWidthCodecsAreExactlyFourOrEightBytes(t *testing.T) {
	cases := []struct {
		c    Codec
		v    interface{}
		want int
	}{
		{Fixed32Codec(), uint32(1), 4},
		{Sfixed32Codec(), int32(-1), 4},
		{FloatCodec(), float32(1), 4},
		{Fixed64Codec(), uint64(1), 8},
		{Sfixed64Codec(), int64(-1), 8},
		{DoubleCodec(), float64(1), 8},
	}
	for _, c := range cases {
		buf := wire.NewWireBuffer()
		if err := c.c.Encode(c.v, buf); err != nil {
			t.Fatal(err)
		}
		if buf.WrittenLength() != c.want {
			t.Errorf("%T: wrote %d bytes, want %d", c.c, buf.WrittenLength(), c.want)
		}
	}
}

func TestCodecWireTypes(t *testing.T) {
	cases := []struct {
		c    Codec
		want wire.WireType
	}{
		{BoolCodec(), wire.Varint},
		{Int32Codec(), wire.Varint},
		{Uint64Codec(), wire.Varint},
		{EnumCodec(), wire.Varint},
		{Fixed32Codec(), wire.I32},
		{FloatCodec(), wire.I32},
		{Fixed64Codec(), wire.I64},
		{DoubleCodec(), wire.I64},
		{StringCodec(), wire.LEN},
		{BytesCodec(), wire.LEN},
	}
	for _, c := range cases {
		if got := c.c.WireType(); got != c.want {
			t.Errorf("%T.WireType() = %v, want %v", c.c, got, c.want)
		}
	}
}

func TestIsDefault(t *testing.T) {
	if !BoolCodec().IsDefault(false) {
		t.Error("bool false should be default")
	}
	if BoolCodec().IsDefault(true) {
		t.Error("bool true should not be default")
	}
	if !StringCodec().IsDefault("") {
		t.Error(`string "" should be default`)
	}
	if !BytesCodec().IsDefault([]byte{}) {
		t.Error("empty bytes should be default")
	}
	if !Int32Codec().IsDefault(int32(0)) {
		t.Error("int32 0 should be default")
	}
}
