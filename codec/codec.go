// Package codec implements the composable value-codec family, the
// per-field schema binding, and the top-level message encode/decode
// engine that together turn a programmatic schema declaration into a
// Protocol Buffers wire-format codec.
package codec

import (
	"fmt"

	"github.com/gowire/protolite/wire"
)

// Codec maps a Go value to and from one protobuf wire value. It never
// writes or reads a field header — MessageCodec owns framing.
type Codec interface {
	// WireType is the wire type this codec emits for a single value.
	WireType() wire.WireType
	// Default is the protobuf zero value for this codec's type.
	Default() interface{}
	// IsDefault reports whether v equals Default(), used to elide
	// fields from the wire.
	IsDefault(v interface{}) bool
	// Encode writes only the value bytes, no field header.
	Encode(v interface{}, buf *wire.WireBuffer) error
	// Decode reads one value from the current cursor.
	Decode(buf *wire.WireBuffer) (interface{}, error)
	// Length returns the exact byte count Encode(v, ...) would produce.
	Length(v interface{}) int
}

type boolCodec struct{}

// BoolCodec returns the bool codec: VARINT, 0 or 1, any non-zero decodes true.
func BoolCodec() Codec { return boolCodec{} }

func (boolCodec) WireType() wire.WireType    { return wire.Varint }
func (boolCodec) Default() interface{}       { return false }
func (boolCodec) IsDefault(v interface{}) bool {
	b, _ := v.(bool)
	return !b
}
func (boolCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("codec: bool: expected bool, got %T", v)
	}
	if b {
		return buf.WriteVarint(1)
	}
	return buf.WriteVarint(0)
}
func (boolCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	v, err := buf.ReadVarint()
	if err != nil {
		return nil, err
	}
	return v != 0, nil
}
func (boolCodec) Length(interface{}) int { return 1 }

type int32Codec struct{}

// Int32Codec returns the int32 codec: plain varint, sign-extended to 64
// bits before encoding so negative values occupy the full 10 bytes.
func Int32Codec() Codec { return int32Codec{} }

func (int32Codec) WireType() wire.WireType { return wire.Varint }
func (int32Codec) Default() interface{}    { return int32(0) }
func (int32Codec) IsDefault(v interface{}) bool {
	i, _ := v.(int32)
	return i == 0
}
func (int32Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	i, ok := v.(int32)
	if !ok {
		return fmt.Errorf("codec: int32: expected int32, got %T", v)
	}
	return buf.WriteVarint(uint64(int64(i)))
}
func (int32Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	v, err := buf.ReadVarint()
	if err != nil {
		return nil, err
	}
	return int32(v), nil
}
func (int32Codec) Length(v interface{}) int {
	i, _ := v.(int32)
	return wire.VarintLength(uint64(int64(i)))
}

type int64Codec struct{}

// Int64Codec returns the int64 codec: plain varint.
func Int64Codec() Codec { return int64Codec{} }

func (int64Codec) WireType() wire.WireType { return wire.Varint }
func (int64Codec) Default() interface{}    { return int64(0) }
func (int64Codec) IsDefault(v interface{}) bool {
	i, _ := v.(int64)
	return i == 0
}
func (int64Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	i, ok := v.(int64)
	if !ok {
		return fmt.Errorf("codec: int64: expected int64, got %T", v)
	}
	return buf.WriteVarint(uint64(i))
}
func (int64Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	v, err := buf.ReadVarint()
	if err != nil {
		return nil, err
	}
	return int64(v), nil
}
func (int64Codec) Length(v interface{}) int {
	i, _ := v.(int64)
	return wire.VarintLength(uint64(i))
}

type uint32Codec struct{}

// Uint32Codec returns the uint32 codec: plain varint, low 32 bits on decode.
func Uint32Codec() Codec { return uint32Codec{} }

func (uint32Codec) WireType() wire.WireType { return wire.Varint }
func (uint32Codec) Default() interface{}    { return uint32(0) }
func (uint32Codec) IsDefault(v interface{}) bool {
	u, _ := v.(uint32)
	return u == 0
}
func (uint32Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	u, ok := v.(uint32)
	if !ok {
		return fmt.Errorf("codec: uint32: expected uint32, got %T", v)
	}
	return buf.WriteVarint(uint64(u))
}
func (uint32Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	v, err := buf.ReadVarint()
	if err != nil {
		return nil, err
	}
	return uint32(v), nil
}
func (uint32Codec) Length(v interface{}) int {
	u, _ := v.(uint32)
	return wire.VarintLength(uint64(u))
}

type uint64Codec struct{}

// Uint64Codec returns the uint64 codec: plain varint.
func Uint64Codec() Codec { return uint64Codec{} }

func (uint64Codec) WireType() wire.WireType { return wire.Varint }
func (uint64Codec) Default() interface{}    { return uint64(0) }
func (uint64Codec) IsDefault(v interface{}) bool {
	u, _ := v.(uint64)
	return u == 0
}
func (uint64Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	u, ok := v.(uint64)
	if !ok {
		return fmt.Errorf("codec: uint64: expected uint64, got %T", v)
	}
	return buf.WriteVarint(u)
}
func (uint64Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadVarint()
}
func (uint64Codec) Length(v interface{}) int {
	u, _ := v.(uint64)
	return wire.VarintLength(u)
}

type sint32Codec struct{}

// Sint32Codec returns the zigzag-encoded sint32 codec.
func Sint32Codec() Codec { return sint32Codec{} }

func (sint32Codec) WireType() wire.WireType { return wire.Varint }
func (sint32Codec) Default() interface{}    { return int32(0) }
func (sint32Codec) IsDefault(v interface{}) bool {
	i, _ := v.(int32)
	return i == 0
}
func (sint32Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	i, ok := v.(int32)
	if !ok {
		return fmt.Errorf("codec: sint32: expected int32, got %T", v)
	}
	return buf.WriteZigzag(int64(i))
}
func (sint32Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	z, err := buf.ReadZigzag()
	if err != nil {
		return nil, err
	}
	return int32(z), nil
}
func (sint32Codec) Length(v interface{}) int {
	i, _ := v.(int32)
	return wire.ZigzagLength(int64(i))
}

type sint64Codec struct{}

// Sint64Codec returns the zigzag-encoded sint64 codec.
func Sint64Codec() Codec { return sint64Codec{} }

func (sint64Codec) WireType() wire.WireType { return wire.Varint }
func (sint64Codec) Default() interface{}    { return int64(0) }
func (sint64Codec) IsDefault(v interface{}) bool {
	i, _ := v.(int64)
	return i == 0
}
func (sint64Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	i, ok := v.(int64)
	if !ok {
		return fmt.Errorf("codec: sint64: expected int64, got %T", v)
	}
	return buf.WriteZigzag(i)
}
func (sint64Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadZigzag()
}
func (sint64Codec) Length(v interface{}) int {
	i, _ := v.(int64)
	return wire.ZigzagLength(i)
}

type fixed32Codec struct{}

// Fixed32Codec returns the fixed32 codec: 4 little-endian bytes, unsigned.
func Fixed32Codec() Codec { return fixed32Codec{} }

func (fixed32Codec) WireType() wire.WireType { return wire.I32 }
func (fixed32Codec) Default() interface{}    { return uint32(0) }
func (fixed32Codec) IsDefault(v interface{}) bool {
	u, _ := v.(uint32)
	return u == 0
}
func (fixed32Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	u, ok := v.(uint32)
	if !ok {
		return fmt.Errorf("codec: fixed32: expected uint32, got %T", v)
	}
	return buf.WriteFixed32(u)
}
func (fixed32Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadFixed32()
}
func (fixed32Codec) Length(interface{}) int { return 4 }

type fixed64Codec struct{}

// Fixed64Codec returns the fixed64 codec: 8 little-endian bytes, unsigned.
func Fixed64Codec() Codec { return fixed64Codec{} }

func (fixed64Codec) WireType() wire.WireType { return wire.I64 }
func (fixed64Codec) Default() interface{}    { return uint64(0) }
func (fixed64Codec) IsDefault(v interface{}) bool {
	u, _ := v.(uint64)
	return u == 0
}
func (fixed64Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	u, ok := v.(uint64)
	if !ok {
		return fmt.Errorf("codec: fixed64: expected uint64, got %T", v)
	}
	return buf.WriteFixed64(u)
}
func (fixed64Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadFixed64()
}
func (fixed64Codec) Length(interface{}) int { return 8 }

type sfixed32Codec struct{}

// Sfixed32Codec returns the sfixed32 codec: 4 little-endian bytes, signed.
func Sfixed32Codec() Codec { return sfixed32Codec{} }

func (sfixed32Codec) WireType() wire.WireType { return wire.I32 }
func (sfixed32Codec) Default() interface{}    { return int32(0) }
func (sfixed32Codec) IsDefault(v interface{}) bool {
	i, _ := v.(int32)
	return i == 0
}
func (sfixed32Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	i, ok := v.(int32)
	if !ok {
		return fmt.Errorf("codec: sfixed32: expected int32, got %T", v)
	}
	return buf.WriteSfixed32(i)
}
func (sfixed32Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadSfixed32()
}
func (sfixed32Codec) Length(interface{}) int { return 4 }

type sfixed64Codec struct{}

// Sfixed64Codec returns the sfixed64 codec: 8 little-endian bytes, signed.
func Sfixed64Codec() Codec { return sfixed64Codec{} }

func (sfixed64Codec) WireType() wire.WireType { return wire.I64 }
func (sfixed64Codec) Default() interface{}    { return int64(0) }
func (sfixed64Codec) IsDefault(v interface{}) bool {
	i, _ := v.(int64)
	return i == 0
}
func (sfixed64Codec) Encode(v interface{}, buf *wire.WireBuffer) error {
	i, ok := v.(int64)
	if !ok {
		return fmt.Errorf("codec: sfixed64: expected int64, got %T", v)
	}
	return buf.WriteSfixed64(i)
}
func (sfixed64Codec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadSfixed64()
}
func (sfixed64Codec) Length(interface{}) int { return 8 }

type floatCodec struct{}

// FloatCodec returns the float32 codec: IEEE-754 binary32, little-endian.
func FloatCodec() Codec { return floatCodec{} }

func (floatCodec) WireType() wire.WireType { return wire.I32 }
func (floatCodec) Default() interface{}    { return float32(0) }
func (floatCodec) IsDefault(v interface{}) bool {
	f, _ := v.(float32)
	return f == 0
}
func (floatCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	f, ok := v.(float32)
	if !ok {
		return fmt.Errorf("codec: float: expected float32, got %T", v)
	}
	return buf.WriteFloat32(f)
}
func (floatCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadFloat32()
}
func (floatCodec) Length(interface{}) int { return 4 }

type doubleCodec struct{}

// DoubleCodec returns the float64 codec: IEEE-754 binary64, little-endian.
func DoubleCodec() Codec { return doubleCodec{} }

func (doubleCodec) WireType() wire.WireType { return wire.I64 }
func (doubleCodec) Default() interface{}    { return float64(0) }
func (doubleCodec) IsDefault(v interface{}) bool {
	f, _ := v.(float64)
	return f == 0
}
func (doubleCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	f, ok := v.(float64)
	if !ok {
		return fmt.Errorf("codec: double: expected float64, got %T", v)
	}
	return buf.WriteFloat64(f)
}
func (doubleCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadFloat64()
}
func (doubleCodec) Length(interface{}) int { return 8 }

type enumCodec struct{}

// EnumCodec returns the open-enum codec: plain varint, any int32 accepted.
func EnumCodec() Codec { return enumCodec{} }

func (enumCodec) WireType() wire.WireType { return wire.Varint }
func (enumCodec) Default() interface{}    { return int32(0) }
func (enumCodec) IsDefault(v interface{}) bool {
	i, _ := v.(int32)
	return i == 0
}
func (enumCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	i, ok := v.(int32)
	if !ok {
		return fmt.Errorf("codec: enum: expected int32, got %T", v)
	}
	return buf.WriteVarint(uint64(int64(i)))
}
func (enumCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	v, err := buf.ReadVarint()
	if err != nil {
		return nil, err
	}
	return int32(v), nil
}
func (enumCodec) Length(v interface{}) int {
	i, _ := v.(int32)
	return wire.VarintLength(uint64(int64(i)))
}

type stringCodec struct{}

// StringCodec returns the UTF-8 string codec: LEN, varint length + bytes.
func StringCodec() Codec { return stringCodec{} }

func (stringCodec) WireType() wire.WireType { return wire.LEN }
func (stringCodec) Default() interface{}    { return "" }
func (stringCodec) IsDefault(v interface{}) bool {
	s, _ := v.(string)
	return s == ""
}
func (stringCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("codec: string: expected string, got %T", v)
	}
	return buf.WriteString(s)
}
func (stringCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadString()
}
func (stringCodec) Length(v interface{}) int {
	s, _ := v.(string)
	return wire.StringLength(s)
}

type bytesCodec struct{}

// BytesCodec returns the bytes codec: LEN, varint length + raw bytes.
func BytesCodec() Codec { return bytesCodec{} }

func (bytesCodec) WireType() wire.WireType { return wire.LEN }
func (bytesCodec) Default() interface{}    { return []byte{} }
func (bytesCodec) IsDefault(v interface{}) bool {
	b, _ := v.([]byte)
	return len(b) == 0
}
func (bytesCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("codec: bytes: expected []byte, got %T", v)
	}
	return buf.WriteBytes(b)
}
func (bytesCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	return buf.ReadBytes()
}
func (bytesCodec) Length(v interface{}) int {
	b, _ := v.([]byte)
	return wire.BytesLength(b)
}
