// Package protolite is the consumer-facing surface of a schema-driven
// Protocol Buffers wire codec: factory functions that bind a primitive
// or composite codec to a field index, plus MessageCodec construction.
// There is no .proto parsing and no registry; schemas are plain Go
// values built by calling these constructors directly.
package protolite

import (
	"github.com/gowire/protolite/codec"
	"github.com/gowire/protolite/wire"
)

// ===== SCALAR FIELD CONSTRUCTORS =====

// Bool binds a bool codec to index, with no repetition.
func Bool(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.BoolCodec())
}

// Int32 binds a varint int32 codec to index.
func Int32(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Int32Codec())
}

// Int64 binds a varint int64 codec to index.
func Int64(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Int64Codec())
}

// Uint32 binds a varint uint32 codec to index.
func Uint32(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Uint32Codec())
}

// Uint64 binds a varint uint64 codec to index.
func Uint64(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Uint64Codec())
}

// Sint32 binds a zigzag-varint int32 codec to index.
func Sint32(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Sint32Codec())
}

// Sint64 binds a zigzag-varint int64 codec to index.
func Sint64(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Sint64Codec())
}

// Fixed32 binds a 4-byte little-endian uint32 codec to index.
func Fixed32(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Fixed32Codec())
}

// Fixed64 binds an 8-byte little-endian uint64 codec to index.
func Fixed64(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Fixed64Codec())
}

// Sfixed32 binds a 4-byte little-endian int32 codec to index.
func Sfixed32(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Sfixed32Codec())
}

// Sfixed64 binds an 8-byte little-endian int64 codec to index.
func Sfixed64(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Sfixed64Codec())
}

// Float binds an IEEE-754 binary32 codec to index.
func Float(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.FloatCodec())
}

// Double binds an IEEE-754 binary64 codec to index.
func Double(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.DoubleCodec())
}

// Enum binds an open int32 enum codec to index: any int32 round-trips,
// known or not.
func Enum(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.EnumCodec())
}

// String binds a UTF-8 string codec to index.
func String(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.StringCodec())
}

// Bytes binds a raw-bytes codec to index.
func Bytes(index uint32) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.BytesCodec())
}

// Submessage binds a nested MessageCodec to index as a length-delimited
// field.
func Submessage(index uint32, msg *codec.MessageCodec) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.Submessage(msg))
}

// JSON binds a string-serialized JSON codec to index.
func JSON(index uint32, opts codec.JSONOptions) *codec.FieldSchema {
	return codec.NewField(wire.FieldNumber(index), codec.JSON(opts))
}

// ===== REPEATED FIELD CONSTRUCTORS =====

type expandedNamespace struct{}

func (expandedNamespace) Bool(index uint32) *codec.FieldSchema { return Bool(index).Repeat(codec.RepeatExpanded) }
func (expandedNamespace) Int32(index uint32) *codec.FieldSchema {
	return Int32(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Int64(index uint32) *codec.FieldSchema {
	return Int64(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Uint32(index uint32) *codec.FieldSchema {
	return Uint32(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Uint64(index uint32) *codec.FieldSchema {
	return Uint64(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Sint32(index uint32) *codec.FieldSchema {
	return Sint32(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Sint64(index uint32) *codec.FieldSchema {
	return Sint64(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Fixed32(index uint32) *codec.FieldSchema {
	return Fixed32(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Fixed64(index uint32) *codec.FieldSchema {
	return Fixed64(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Sfixed32(index uint32) *codec.FieldSchema {
	return Sfixed32(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Sfixed64(index uint32) *codec.FieldSchema {
	return Sfixed64(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Float(index uint32) *codec.FieldSchema {
	return Float(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Double(index uint32) *codec.FieldSchema {
	return Double(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Enum(index uint32) *codec.FieldSchema { return Enum(index).Repeat(codec.RepeatExpanded) }
func (expandedNamespace) String(index uint32) *codec.FieldSchema {
	return String(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Bytes(index uint32) *codec.FieldSchema {
	return Bytes(index).Repeat(codec.RepeatExpanded)
}
func (expandedNamespace) Submessage(index uint32, msg *codec.MessageCodec) *codec.FieldSchema {
	return Submessage(index, msg).Repeat(codec.RepeatExpanded)
}

type repeatedNamespace struct {
	// Expanded forces one header+value pair per element instead of
	// packing. The only legal choice for string/bytes/submessage.
	Expanded expandedNamespace
}

func (repeatedNamespace) Bool(index uint32) *codec.FieldSchema { return Bool(index).Repeat(codec.RepeatDefault) }
func (repeatedNamespace) Int32(index uint32) *codec.FieldSchema {
	return Int32(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Int64(index uint32) *codec.FieldSchema {
	return Int64(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Uint32(index uint32) *codec.FieldSchema {
	return Uint32(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Uint64(index uint32) *codec.FieldSchema {
	return Uint64(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Sint32(index uint32) *codec.FieldSchema {
	return Sint32(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Sint64(index uint32) *codec.FieldSchema {
	return Sint64(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Fixed32(index uint32) *codec.FieldSchema {
	return Fixed32(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Fixed64(index uint32) *codec.FieldSchema {
	return Fixed64(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Sfixed32(index uint32) *codec.FieldSchema {
	return Sfixed32(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Sfixed64(index uint32) *codec.FieldSchema {
	return Sfixed64(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Float(index uint32) *codec.FieldSchema {
	return Float(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Double(index uint32) *codec.FieldSchema {
	return Double(index).Repeat(codec.RepeatDefault)
}
func (repeatedNamespace) Enum(index uint32) *codec.FieldSchema { return Enum(index).Repeat(codec.RepeatDefault) }

// Repeated is the namespace for repeated-field constructors: Repeated.Int32(1)
// packs, Repeated.Expanded.String(1) is required for LEN-typed codecs.
var Repeated = repeatedNamespace{}

// ===== MESSAGE & VARIANT =====

// F names a field for use in Message's argument list.
func F(name string, schema *codec.FieldSchema) codec.NamedField {
	return codec.F(name, schema)
}

// Message builds a MessageCodec from an ordered list of named fields.
func Message(fields ...codec.NamedField) (*codec.MessageCodec, error) {
	return codec.NewMessage(fields...)
}

// NewSelfReferencingMessage allocates an empty MessageCodec a caller can
// pass to Submessage before its fields are known, for schemas that embed
// themselves (trees, linked lists). Call InitMessage on the result once
// the full field list, including any self-referencing ones, is ready.
func NewSelfReferencingMessage() *codec.MessageCodec {
	return &codec.MessageCodec{}
}

// InitMessage populates a MessageCodec allocated by NewSelfReferencingMessage.
func InitMessage(m *codec.MessageCodec, fields ...codec.NamedField) error {
	return codec.InitMessage(m, fields...)
}

// Variant builds a discriminated-union codec over opts.Codecs.
func Variant(opts codec.VariantOptions) codec.Codec {
	return codec.Variant(opts)
}

// ===== BUFFER ACCESS =====

// NewBuffer allocates an empty, growable WireBuffer.
func NewBuffer() *wire.WireBuffer {
	return wire.NewWireBuffer()
}

// BufferFromBytes wraps data as a borrowed WireBuffer positioned at 0; it
// cannot grow past len(data).
func BufferFromBytes(data []byte) *wire.WireBuffer {
	return wire.NewWireBufferFromBytes(data)
}

// BufferFromHex decodes a hex string into a fresh, owned WireBuffer.
func BufferFromHex(s string) (*wire.WireBuffer, error) {
	return wire.FromHex(s)
}
