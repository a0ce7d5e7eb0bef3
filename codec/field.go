package codec

import "github.com/gowire/protolite/wire"

// Repetition selects how a field's multiple values are framed on the wire.
type Repetition uint8

const (
	// RepeatNone is a single scalar value, or absent.
	RepeatNone Repetition = iota
	// RepeatDefault packs scalar wire types (VARINT/I32/I64) into one
	// length-delimited block; it is not legal for LEN-typed codecs.
	RepeatDefault
	// RepeatExpanded emits one header+value pair per element. The only
	// legal mode for LEN-typed codecs (string, bytes, submessage, JSON).
	RepeatExpanded
)

// FieldSchema binds a codec to a field index within a message, along with
// its repetition mode. FieldSchema values are immutable once built;
// Transform, Required and Repeat all return a new instance.
type FieldSchema struct {
	Index    wire.FieldNumber
	Codec    Codec
	Repeated Repetition
	required bool
}

// NewField binds codec c to field index, with no repetition.
func NewField(index wire.FieldNumber, c Codec) *FieldSchema {
	return &FieldSchema{Index: index, Codec: c}
}

// Transform wraps the field's codec so the caller-facing value type is
// whatever params.Decode produces, instead of the codec's native type.
func (f *FieldSchema) Transform(params TransformParams) *FieldSchema {
	out := *f
	out.Codec = Transform(f.Codec, params)
	return &out
}

// Required marks the field as required. This does not change encode or
// decode behavior: an absent RepeatNone field is already filled with the
// codec's default regardless of this flag. It exists so schema
// introspection can distinguish "optional, defaults on absence" from
// "required, defaults on absence" the way the field was declared.
func (f *FieldSchema) Required() *FieldSchema {
	out := *f
	out.required = true
	return &out
}

// IsRequired reports whether Required was called on this schema.
func (f *FieldSchema) IsRequired() bool { return f.required }

// Repeat sets the field's repetition mode.
func (f *FieldSchema) Repeat(mode Repetition) *FieldSchema {
	out := *f
	out.Repeated = mode
	return &out
}

type encodeMode uint8

const (
	modeSingle encodeMode = iota
	modePacked
	modeExpanded
)

func (f *FieldSchema) encodeMode() encodeMode {
	switch f.Repeated {
	case RepeatExpanded:
		return modeExpanded
	case RepeatDefault:
		switch f.Codec.WireType() {
		case wire.Varint, wire.I32, wire.I64:
			return modePacked
		default:
			return modeExpanded
		}
	default:
		return modeSingle
	}
}
