package wire

// WriteHeader writes a field header: the varint-packed (index<<3)|wiretype.
// It rejects indexes outside [1, MaxFieldNumber] with a RangeError and
// group wire types with ErrGroupWireType.
func (b *WireBuffer) WriteHeader(index FieldNumber, wt WireType) error {
	if index < 1 || index > MaxFieldNumber {
		return &RangeError{What: "field index", Value: int64(index)}
	}
	if wt.IsGroup() {
		return ErrGroupWireType
	}
	return b.WriteVarint(MakeTag(index, wt))
}

// ReadHeader reads a field header and splits it into field index and wire
// type. It does not reject group wire types — callers decide whether a
// group is acceptable in context (it never is for a codec operation, but
// the outer decode loop needs to see the wire type to report a precise
// error).
func (b *WireBuffer) ReadHeader() (FieldNumber, WireType, error) {
	tag, err := b.ReadVarint()
	if err != nil {
		return 0, 0, err
	}
	index, wt := ParseTag(tag)
	return index, wt, nil
}

// HeaderSize returns the exact number of bytes WriteHeader(index, wt) would
// produce. Unlike a fixed one-byte assumption, this is exact for any field
// index in range, including ones whose tag varint spans multiple bytes.
func HeaderSize(index FieldNumber, wt WireType) int {
	return VarintLength(MakeTag(index, wt))
}

// PackedLength sums the exact byte length of a packed block of count items
// with the given wire type. For I32/I64 this is a constant-size
// multiplication; for VARINT it calls itemLength for each item's exact
// varint size (the caller knows the concrete value type, the wire layer
// does not). LEN and group wire types cannot be packed and return a
// RangeError.
func PackedLength(wt WireType, count int, itemLength func(i int) int) (int, error) {
	switch wt {
	case I32:
		return count * 4, nil
	case I64:
		return count * 8, nil
	case Varint:
		total := 0
		for i := 0; i < count; i++ {
			total += itemLength(i)
		}
		return total, nil
	default:
		return 0, &RangeError{What: "packed wire type", Value: int64(wt)}
	}
}
