package codec

import (
	"fmt"
	"reflect"

	"github.com/gowire/protolite/wire"
)

// Message is a decoded value: field name to field value, plus an optional
// UnknownFieldsKey entry carrying bytes the schema did not recognize.
type Message = map[string]interface{}

// UnknownFieldsKey holds a []UnknownField slice on a decoded Message for
// any wire fields whose index was not present in the schema. Chosen as a
// dollar-prefixed key so it can never collide with a protobuf field name,
// which must be a valid identifier.
const UnknownFieldsKey = "$unknown"

// UnknownField is one field the schema didn't recognize, captured well
// enough to re-emit byte-for-byte on the next encode.
type UnknownField struct {
	Index    wire.FieldNumber
	WireType wire.WireType
	// Raw holds uint64 for Varint, uint32 for I32, uint64 for I64, or
	// []byte for LEN, matching what wire.WireBuffer's readers return.
	Raw interface{}
}

// NamedField pairs a field name with its schema, preserving the caller's
// declaration order (a Go map would not).
type NamedField struct {
	Name   string
	Schema *FieldSchema
}

// F builds a NamedField, for use in NewMessage's argument list.
func F(name string, schema *FieldSchema) NamedField {
	return NamedField{Name: name, Schema: schema}
}

// MessageTransform wraps a whole MessageCodec so the caller-facing value
// shape differs from the plain field-by-field Message map: Encode
// preprocesses the caller's value into a Message before the normal field
// loop runs, Decode postprocesses the field loop's Message afterward.
// Unknown fields survive the round trip regardless of what Decode returns.
type MessageTransform struct {
	Encode  func(v Message) (Message, error)
	Decode  func(v Message) (Message, error)
	Default Message
}

// MessageCodec drives the top-level encode/decode loop for one message
// shape: field presence, packed/expanded framing, default elision,
// required-field defaulting and unknown-field preservation.
type MessageCodec struct {
	names   []string
	byName  map[string]*FieldSchema
	byIndex map[wire.FieldNumber]string

	inner     *MessageCodec
	transform *MessageTransform
}

// NewMessage builds a MessageCodec from an ordered list of named fields.
// It rejects duplicate names, duplicate field indexes, out-of-range
// indexes, and packed (RepeatDefault) repetition on a LEN-typed codec.
func NewMessage(fields ...NamedField) (*MessageCodec, error) {
	m := &MessageCodec{
		byName:  make(map[string]*FieldSchema, len(fields)),
		byIndex: make(map[wire.FieldNumber]string, len(fields)),
	}
	for _, nf := range fields {
		if nf.Schema.Index < 1 || nf.Schema.Index > wire.MaxFieldNumber {
			return nil, fmt.Errorf("codec: field %q: index %d out of range", nf.Name, nf.Schema.Index)
		}
		if _, dup := m.byName[nf.Name]; dup {
			return nil, fmt.Errorf("codec: duplicate field name %q", nf.Name)
		}
		if existing, dup := m.byIndex[nf.Schema.Index]; dup {
			return nil, fmt.Errorf("codec: field index %d used by both %q and %q", nf.Schema.Index, existing, nf.Name)
		}
		if nf.Schema.Repeated == RepeatDefault && nf.Schema.Codec.WireType() == wire.LEN {
			return nil, fmt.Errorf("codec: field %q: packed repetition is not legal for a LEN-typed codec, use Repeat(RepeatExpanded)", nf.Name)
		}
		m.names = append(m.names, nf.Name)
		m.byName[nf.Name] = nf.Schema
		m.byIndex[nf.Schema.Index] = nf.Name
	}
	return m, nil
}

// InitMessage builds a MessageCodec and installs it into the zero-valued
// *MessageCodec m. It exists so a message can reference itself: allocate
// m := new(MessageCodec), build fields that take Submessage(m), then call
// InitMessage(m, those fields...). Before the call, m behaves as an empty
// message; any field built against it before InitMessage runs still
// resolves correctly because Submessage stores the pointer, not a copy.
func InitMessage(m *MessageCodec, fields ...NamedField) error {
	built, err := NewMessage(fields...)
	if err != nil {
		return err
	}
	*m = *built
	return nil
}

// Transform wraps m so Encode/Decode operate on whatever shape t
// describes instead of m's plain field map. Calling Transform again on
// the result composes further.
func (m *MessageCodec) Transform(t MessageTransform) *MessageCodec {
	return &MessageCodec{inner: m, transform: &t}
}

// DefaultValue returns the message value produced by decoding zero bytes:
// every RepeatNone field at its codec default, every repeated field as an
// empty slice, or the transform's declared Default if m is a wrapper.
func (m *MessageCodec) DefaultValue() Message {
	if m.transform != nil {
		return m.transform.Default
	}
	v := make(Message, len(m.names))
	for _, name := range m.names {
		fs := m.byName[name]
		if fs.Repeated == RepeatNone {
			v[name] = fs.Codec.Default()
		} else {
			v[name] = []interface{}{}
		}
	}
	return v
}

// IsDefaultValue reports whether v would encode to zero bytes. For a
// transform wrapper it compares v with the transform's declared Default.
func (m *MessageCodec) IsDefaultValue(v Message) bool {
	if m.transform != nil {
		return reflect.DeepEqual(v, m.transform.Default)
	}
	if unk, ok := v[UnknownFieldsKey].([]UnknownField); ok && len(unk) > 0 {
		return false
	}
	for _, name := range m.names {
		fs := m.byName[name]
		val, present := v[name]
		if fs.Repeated == RepeatNone {
			if present && !fs.Codec.IsDefault(val) {
				return false
			}
			continue
		}
		if present {
			if arr, err := toSlice(val); err == nil && len(arr) > 0 {
				return false
			}
		}
	}
	return true
}

// Encode appends value's wire representation to buf, allocating a fresh
// buffer when buf is nil, and returns the buffer written to.
func (m *MessageCodec) Encode(value Message, buf *wire.WireBuffer) (*wire.WireBuffer, error) {
	if buf == nil {
		buf = wire.NewWireBuffer()
	}
	if m.transform != nil {
		raw, err := m.transform.Encode(value)
		if err != nil {
			return nil, err
		}
		return m.inner.Encode(raw, buf)
	}
	for _, name := range m.names {
		fs := m.byName[name]
		v, present := value[name]
		switch fs.encodeMode() {
		case modeSingle:
			if !present || fs.Codec.IsDefault(v) {
				continue
			}
			if err := buf.WriteHeader(fs.Index, fs.Codec.WireType()); err != nil {
				return nil, wrapEncode(err, name)
			}
			if err := fs.Codec.Encode(v, buf); err != nil {
				return nil, wrapEncode(err, name)
			}
		case modePacked:
			if !present {
				continue
			}
			items, err := toSlice(v)
			if err != nil {
				return nil, wrapEncode(err, name)
			}
			if len(items) == 0 {
				continue
			}
			inner := 0
			for _, item := range items {
				inner += fs.Codec.Length(item)
			}
			if err := buf.WriteHeader(fs.Index, wire.LEN); err != nil {
				return nil, wrapEncode(err, name)
			}
			if err := buf.WriteVarint(uint64(inner)); err != nil {
				return nil, wrapEncode(err, name)
			}
			for _, item := range items {
				if err := fs.Codec.Encode(item, buf); err != nil {
					return nil, wrapEncode(err, name)
				}
			}
		case modeExpanded:
			if !present {
				continue
			}
			items, err := toSlice(v)
			if err != nil {
				return nil, wrapEncode(err, name)
			}
			for _, item := range items {
				if err := buf.WriteHeader(fs.Index, fs.Codec.WireType()); err != nil {
					return nil, wrapEncode(err, name)
				}
				if err := fs.Codec.Encode(item, buf); err != nil {
					return nil, wrapEncode(err, name)
				}
			}
		}
	}
	if unk, ok := value[UnknownFieldsKey].([]UnknownField); ok {
		for _, u := range unk {
			if err := writeUnknown(buf, u); err != nil {
				return nil, err
			}
		}
	}
	return buf, nil
}

// Length returns the exact byte count Encode(value, ...) would produce.
func (m *MessageCodec) Length(value Message) int {
	if m.transform != nil {
		raw, err := m.transform.Encode(value)
		if err != nil {
			return 0
		}
		return m.inner.Length(raw)
	}
	total := 0
	for _, name := range m.names {
		fs := m.byName[name]
		v, present := value[name]
		switch fs.encodeMode() {
		case modeSingle:
			if !present || fs.Codec.IsDefault(v) {
				continue
			}
			total += wire.HeaderSize(fs.Index, fs.Codec.WireType()) + fs.Codec.Length(v)
		case modePacked:
			if !present {
				continue
			}
			items, err := toSlice(v)
			if err != nil || len(items) == 0 {
				continue
			}
			inner := 0
			for _, item := range items {
				inner += fs.Codec.Length(item)
			}
			total += wire.HeaderSize(fs.Index, wire.LEN) + wire.VarintLength(uint64(inner)) + inner
		case modeExpanded:
			if !present {
				continue
			}
			items, err := toSlice(v)
			if err != nil {
				continue
			}
			for _, item := range items {
				total += wire.HeaderSize(fs.Index, fs.Codec.WireType()) + fs.Codec.Length(item)
			}
		}
	}
	if unk, ok := value[UnknownFieldsKey].([]UnknownField); ok {
		for _, u := range unk {
			total += unknownLength(u)
		}
	}
	return total
}

// Decode reads one message from buf until it is exhausted.
func (m *MessageCodec) Decode(buf *wire.WireBuffer) (Message, error) {
	if m.transform != nil {
		raw, err := m.inner.Decode(buf)
		if err != nil {
			return nil, err
		}
		out, err := m.transform.Decode(raw)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = Message{}
		}
		if unk, ok := raw[UnknownFieldsKey]; ok {
			out[UnknownFieldsKey] = unk
		}
		return out, nil
	}

	collected := Message{}
	var unknowns []UnknownField
	for buf.Remaining() > 0 {
		startOffset := buf.Tell()
		index, wt, err := buf.ReadHeader()
		if err != nil {
			return nil, &DecodeError{Offset: startOffset, Err: err}
		}
		name, known := m.byIndex[index]
		if !known {
			raw, err := decodeUnknownValue(buf, wt)
			if err != nil {
				return nil, &DecodeError{Offset: startOffset, Err: err}
			}
			unknowns = append(unknowns, UnknownField{Index: index, WireType: wt, Raw: raw})
			continue
		}
		fs := m.byName[name]
		if wt.IsGroup() {
			return nil, wrapDecode(wire.ErrGroupWireType, name, startOffset)
		}
		if wt == wire.LEN && fs.Codec.WireType() != wire.LEN {
			length, err := buf.ReadVarint()
			if err != nil {
				return nil, wrapDecode(err, name, startOffset)
			}
			sub, err := buf.Slice(int(length))
			if err != nil {
				return nil, wrapDecode(err, name, startOffset)
			}
			for sub.Remaining() > 0 {
				v, err := fs.Codec.Decode(sub)
				if err != nil {
					return nil, wrapDecode(err, name, startOffset)
				}
				appendCollected(collected, name, v)
			}
			continue
		}
		v, err := fs.Codec.Decode(buf)
		if err != nil {
			return nil, wrapDecode(err, name, startOffset)
		}
		appendCollected(collected, name, v)
	}

	result := make(Message, len(m.names)+1)
	for _, name := range m.names {
		fs := m.byName[name]
		val, present := collected[name]
		_, isArr := val.([]interface{})
		if fs.Repeated == RepeatNone {
			if present && isArr {
				return nil, wrapDecode(ErrFieldDeclaredSingle, name, -1)
			}
			if present {
				result[name] = val
			} else {
				result[name] = fs.Codec.Default()
			}
			continue
		}
		switch {
		case !present:
			result[name] = []interface{}{}
		case isArr:
			result[name] = val
		default:
			result[name] = []interface{}{val}
		}
	}
	if len(unknowns) > 0 {
		result[UnknownFieldsKey] = unknowns
	}
	return result, nil
}

func appendCollected(collected Message, name string, v interface{}) {
	existing, ok := collected[name]
	if !ok {
		collected[name] = v
		return
	}
	if arr, isArr := existing.([]interface{}); isArr {
		collected[name] = append(arr, v)
		return
	}
	collected[name] = []interface{}{existing, v}
}

// toSlice normalizes any concrete slice type (e.g. []int32, []string) to
// []interface{} so the encode loop can iterate repeated fields uniformly
// regardless of the caller's element type.
func toSlice(v interface{}) ([]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if arr, ok := v.([]interface{}); ok {
		return arr, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("codec: expected a slice for a repeated field, got %T", v)
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func writeUnknown(buf *wire.WireBuffer, u UnknownField) error {
	if err := buf.WriteHeader(u.Index, u.WireType); err != nil {
		return err
	}
	switch u.WireType {
	case wire.Varint:
		return buf.WriteVarint(u.Raw.(uint64))
	case wire.I32:
		return buf.WriteFixed32(u.Raw.(uint32))
	case wire.I64:
		return buf.WriteFixed64(u.Raw.(uint64))
	case wire.LEN:
		return buf.WriteBytes(u.Raw.([]byte))
	default:
		return wire.ErrGroupWireType
	}
}

func unknownLength(u UnknownField) int {
	header := wire.HeaderSize(u.Index, u.WireType)
	switch u.WireType {
	case wire.Varint:
		return header + wire.VarintLength(u.Raw.(uint64))
	case wire.I32:
		return header + 4
	case wire.I64:
		return header + 8
	case wire.LEN:
		return header + wire.BytesLength(u.Raw.([]byte))
	default:
		return header
	}
}

func decodeUnknownValue(buf *wire.WireBuffer, wt wire.WireType) (interface{}, error) {
	switch wt {
	case wire.Varint:
		return buf.ReadVarint()
	case wire.I32:
		return buf.ReadFixed32()
	case wire.I64:
		return buf.ReadFixed64()
	case wire.LEN:
		return buf.ReadBytes()
	default:
		return nil, wire.ErrGroupWireType
	}
}
