package wire

import (
	"encoding/binary"
	"math"
)

// WriteFixed32 writes v as 4 little-endian bytes (I32 wire type).
func (b *WireBuffer) WriteFixed32(v uint32) error {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return b.writeAt(tmp[:])
}

// ReadFixed32 reads 4 little-endian bytes as uint32.
func (b *WireBuffer) ReadFixed32() (uint32, error) {
	data, err := b.readAt(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// WriteFixed64 writes v as 8 little-endian bytes (I64 wire type).
func (b *WireBuffer) WriteFixed64(v uint64) error {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return b.writeAt(tmp[:])
}

// ReadFixed64 reads 8 little-endian bytes as uint64.
func (b *WireBuffer) ReadFixed64() (uint64, error) {
	data, err := b.readAt(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// WriteSfixed32 writes a signed 32-bit value with the same bit pattern
// ReadSfixed32 will reproduce.
func (b *WireBuffer) WriteSfixed32(v int32) error {
	return b.WriteFixed32(uint32(v))
}

// ReadSfixed32 reads a fixed32 and reinterprets it as signed.
func (b *WireBuffer) ReadSfixed32() (int32, error) {
	v, err := b.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// WriteSfixed64 writes a signed 64-bit value with the same bit pattern
// ReadSfixed64 will reproduce.
func (b *WireBuffer) WriteSfixed64(v int64) error {
	return b.WriteFixed64(uint64(v))
}

// ReadSfixed64 reads a fixed64 and reinterprets it as signed.
func (b *WireBuffer) ReadSfixed64() (int64, error) {
	v, err := b.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// WriteFloat32 writes the IEEE-754 bit pattern of v as fixed32.
func (b *WireBuffer) WriteFloat32(v float32) error {
	return b.WriteFixed32(math.Float32bits(v))
}

// ReadFloat32 reads a fixed32 and reinterprets it as IEEE-754 float32.
func (b *WireBuffer) ReadFloat32() (float32, error) {
	v, err := b.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// WriteFloat64 writes the IEEE-754 bit pattern of v as fixed64.
func (b *WireBuffer) WriteFloat64(v float64) error {
	return b.WriteFixed64(math.Float64bits(v))
}

// ReadFloat64 reads a fixed64 and reinterprets it as IEEE-754 float64.
func (b *WireBuffer) ReadFloat64() (float64, error) {
	v, err := b.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
