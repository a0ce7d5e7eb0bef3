package codec

import "github.com/gowire/protolite/wire"

// JSONOptions supplies the value<->string conversion a JSON codec needs.
// Stringify and Parse are caller-supplied rather than baked in so the
// wire payload can be plain JSON text, or any derived encoding
// (base64'd JSON, a canonicalized form, and so on) the caller wants.
type JSONOptions struct {
	Stringify func(v interface{}) (string, error)
	Parse     func(s string) (interface{}, error)
	// IsZero reports whether v should be elided as the field default.
	// If nil, values are never elided (always encoded when present).
	IsZero func(v interface{}) bool
}

type jsonCodec struct {
	opts JSONOptions
	str  Codec
}

// JSON builds a codec that stores v as Stringify(v) inside a LEN field.
func JSON(opts JSONOptions) Codec {
	return jsonCodec{opts: opts, str: StringCodec()}
}

func (j jsonCodec) WireType() wire.WireType { return wire.LEN }

func (j jsonCodec) Default() interface{} {
	v, _ := j.opts.Parse("{}")
	return v
}

func (j jsonCodec) IsDefault(v interface{}) bool {
	if j.opts.IsZero == nil {
		return false
	}
	return j.opts.IsZero(v)
}

func (j jsonCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	s, err := j.opts.Stringify(v)
	if err != nil {
		return err
	}
	return j.str.Encode(s, buf)
}

func (j jsonCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	raw, err := j.str.Decode(buf)
	if err != nil {
		return nil, err
	}
	return j.opts.Parse(raw.(string))
}

func (j jsonCodec) Length(v interface{}) int {
	s, err := j.opts.Stringify(v)
	if err != nil {
		return 0
	}
	return j.str.Length(s)
}
