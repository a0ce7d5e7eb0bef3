package wire

// MaxBytesLength is the largest length-delimited payload this format will
// encode (2^32 - 1 bytes).
const MaxBytesLength = 1<<32 - 1

// WriteBytes writes data length-delimited: a varint length followed by the
// raw bytes. It fails with a RangeError if data is longer than
// MaxBytesLength.
func (b *WireBuffer) WriteBytes(data []byte) error {
	if len(data) > MaxBytesLength {
		return &RangeError{What: "bytes length", Value: int64(len(data))}
	}
	if err := b.WriteVarint(uint64(len(data))); err != nil {
		return err
	}
	return b.writeAt(data)
}

// WriteString writes s as length-delimited UTF-8 bytes.
func (b *WireBuffer) WriteString(s string) error {
	return b.WriteBytes([]byte(s))
}

// ReadBytes reads a varint length followed by that many raw bytes. The
// returned slice is a copy, independent of the buffer.
func (b *WireBuffer) ReadBytes() ([]byte, error) {
	length, err := b.ReadVarint()
	if err != nil {
		return nil, err
	}
	if length > MaxBytesLength {
		return nil, &RangeError{What: "bytes length", Value: int64(length)}
	}
	return b.readAt(int(length))
}

// ReadString reads a length-delimited byte payload and interprets it as
// UTF-8 text.
func (b *WireBuffer) ReadString() (string, error) {
	data, err := b.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SkipBytes advances past a length-delimited payload without copying it.
func (b *WireBuffer) SkipBytes() error {
	length, err := b.ReadVarint()
	if err != nil {
		return err
	}
	if b.offset+int(length) > b.written {
		return ErrBufferUnderflow
	}
	b.offset += int(length)
	return nil
}

// BytesLength returns the exact number of bytes WriteBytes(data) would
// produce: the varint length prefix plus the payload itself.
func BytesLength(data []byte) int {
	return VarintLength(uint64(len(data))) + len(data)
}

// StringLength returns the exact number of bytes WriteString(s) would
// produce.
func StringLength(s string) int {
	return BytesLength([]byte(s))
}
