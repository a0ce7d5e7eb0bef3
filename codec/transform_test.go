package codec

import (
	"strconv"
	"testing"

	"github.com/gowire/protolite/wire"
)

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// digitsCodec wraps Int32Codec so the caller-facing value is its decimal
// string representation.
func digitsCodec() Codec {
	return Transform(Int32Codec(), TransformParams{
		Encode: func(v interface{}) (interface{}, error) {
			n, err := strconv.Atoi(v.(string))
			return int32(n), err
		},
		Decode: func(v interface{}) (interface{}, error) {
			return strconv.Itoa(int(v.(int32))), nil
		},
		Default: "0",
	})
}

func TestTransformEncodeDecode(t *testing.T) {
	c := digitsCodec()
	buf := wire.NewWireBuffer()
	if err := c.Encode("42", buf); err != nil {
		t.Fatal(err)
	}
	buf.Seek(0)
	got, err := c.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != "42" {
		t.Errorf("got %v, want \"42\"", got)
	}
}

// TestTransformComposition verifies transform(t1).transform(t2):
// decode is t2.decode ∘ t1.decode ∘ raw_decode; encode is
// raw_encode ∘ t1.encode ∘ t2.encode.
func TestTransformComposition(t *testing.T) {
	c1 := digitsCodec() // domain: decimal string
	c2 := Transform(c1, TransformParams{
		Encode: func(v interface{}) (interface{}, error) { return reverseString(v.(string)), nil },
		Decode: func(v interface{}) (interface{}, error) { return reverseString(v.(string)), nil },
		Default: "0",
	})

	buf := wire.NewWireBuffer()
	if err := c2.Encode("24", buf); err != nil { // reversed("24") == "42" == int32(42)
		t.Fatal(err)
	}
	// raw_encode(p1.Encode(p2.Encode("24"))) must have written varint(42).
	raw := wire.NewWireBuffer()
	if err := Int32Codec().Encode(int32(42), raw); err != nil {
		t.Fatal(err)
	}
	if string(buf.WrittenBytes()) != string(raw.WrittenBytes()) {
		t.Errorf("composed encode = %x, want %x", buf.WrittenBytes(), raw.WrittenBytes())
	}

	buf.Seek(0)
	got, err := c2.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != "24" {
		t.Errorf("composed decode = %v, want \"24\"", got)
	}
}

func TestTransformDefaultAndLength(t *testing.T) {
	c := digitsCodec()
	if got := c.Default(); got != "0" {
		t.Errorf("Default() = %v, want \"0\"", got)
	}
	if !c.IsDefault("0") {
		t.Error(`IsDefault("0") should be true`)
	}
	if c.IsDefault("1") {
		t.Error(`IsDefault("1") should be false`)
	}
	if got, want := c.Length("42"), Int32Codec().Length(int32(42)); got != want {
		t.Errorf("Length(\"42\") = %d, want %d", got, want)
	}
}
