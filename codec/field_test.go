package codec

import (
	"testing"

	"github.com/gowire/protolite/wire"
)

func TestEncodeModeSelection(t *testing.T) {
	cases := []struct {
		name string
		fs   *FieldSchema
		want encodeMode
	}{
		{"scalar", NewField(1, Int32Codec()), modeSingle},
		{"packed varint", NewField(1, Int32Codec()).Repeat(RepeatDefault), modePacked},
		{"packed fixed32", NewField(1, Fixed32Codec()).Repeat(RepeatDefault), modePacked},
		{"default-mode string falls back to expanded", NewField(1, StringCodec()).Repeat(RepeatDefault), modeExpanded},
		{"explicit expanded", NewField(1, Int32Codec()).Repeat(RepeatExpanded), modeExpanded},
	}
	for _, c := range cases {
		if got := c.fs.encodeMode(); got != c.want {
			t.Errorf("%s: encodeMode() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFieldSchemaImmutability(t *testing.T) {
	base := NewField(1, Int32Codec())
	required := base.Required()
	if base.IsRequired() {
		t.Error("Required() must not mutate the receiver")
	}
	if !required.IsRequired() {
		t.Error("Required() result should report required")
	}
	repeated := base.Repeat(RepeatExpanded)
	if base.Repeated != RepeatNone {
		t.Error("Repeat() must not mutate the receiver")
	}
	if repeated.Repeated != RepeatExpanded {
		t.Error("Repeat() result should carry the new mode")
	}
}

func TestFieldTransformPreservesIndex(t *testing.T) {
	fs := NewField(5, Int32Codec()).Transform(TransformParams{
		Encode: func(v interface{}) (interface{}, error) { return v, nil },
		Decode: func(v interface{}) (interface{}, error) { return v, nil },
	})
	if fs.Index != wire.FieldNumber(5) {
		t.Errorf("Index = %d, want 5", fs.Index)
	}
}
