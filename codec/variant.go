package codec

import (
	"fmt"

	"github.com/gowire/protolite/wire"
)

// VariantOptions configures a discriminated-union codec: a fixed outer
// shape {typename, typeid, value} whose value bytes are the chosen
// member's own encoding, selected and later reconstructed by name.
type VariantOptions struct {
	// Discriminate picks the registered type name and id for v. ok is
	// false if v does not resolve to any registered type.
	Discriminate func(v interface{}) (typename string, typeid int32, ok bool)
	// Codecs maps each registered type name to the codec that encodes
	// and decodes its payload.
	Codecs map[string]Codec
	// Reconstruct turns a decoded payload back into the union value the
	// caller expects, given the type name it was decoded as. If nil,
	// the raw decoded payload is returned unchanged.
	Reconstruct func(typename string, value interface{}) interface{}
}

type variantCodec struct {
	opts  VariantOptions
	shape *MessageCodec
}

// Variant builds a codec for a discriminated union over opts.Codecs.
func Variant(opts VariantOptions) Codec {
	shape, err := NewMessage(
		F("typename", NewField(1, StringCodec())),
		F("typeid", NewField(2, Int32Codec())),
		F("value", NewField(3, BytesCodec())),
	)
	if err != nil {
		panic("codec: variant shape: " + err.Error())
	}
	return variantCodec{opts: opts, shape: shape}
}

func (v variantCodec) WireType() wire.WireType { return wire.LEN }
func (v variantCodec) Default() interface{}    { return nil }
func (v variantCodec) IsDefault(val interface{}) bool { return val == nil }

func (v variantCodec) Encode(val interface{}, buf *wire.WireBuffer) error {
	typename, typeid, ok := v.opts.Discriminate(val)
	if !ok {
		return &EncodeError{Err: fmt.Errorf("%w: discriminate returned no match", ErrUnresolvedVariant)}
	}
	inner, ok := v.opts.Codecs[typename]
	if !ok {
		return &EncodeError{Err: fmt.Errorf("%w: no codec registered for %q", ErrUnresolvedVariant, typename)}
	}
	payload := wire.NewWireBuffer()
	if err := inner.Encode(val, payload); err != nil {
		return err
	}
	outer := Message{
		"typename": typename,
		"typeid":   typeid,
		"value":    payload.WrittenBytes(),
	}
	_, err := v.shape.Encode(outer, buf)
	return err
}

func (v variantCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	outer, err := v.shape.Decode(buf)
	if err != nil {
		return nil, err
	}
	typename, _ := outer["typename"].(string)
	inner, ok := v.opts.Codecs[typename]
	if !ok {
		return nil, fmt.Errorf("%w: no codec registered for %q", ErrUnresolvedVariant, typename)
	}
	payload, _ := outer["value"].([]byte)
	innerVal, err := inner.Decode(wire.NewWireBufferFromBytes(payload))
	if err != nil {
		return nil, err
	}
	if v.opts.Reconstruct != nil {
		return v.opts.Reconstruct(typename, innerVal), nil
	}
	return innerVal, nil
}

func (v variantCodec) Length(val interface{}) int {
	typename, typeid, ok := v.opts.Discriminate(val)
	if !ok {
		return 0
	}
	inner, ok := v.opts.Codecs[typename]
	if !ok {
		return 0
	}
	outer := Message{
		"typename": typename,
		"typeid":   typeid,
		"value":    make([]byte, inner.Length(val)),
	}
	return v.shape.Length(outer)
}
