package codec

import (
	"reflect"

	"github.com/gowire/protolite/wire"
)

// TransformParams bijectively maps a codec's wire-level domain B to a
// caller-facing domain T. Encode takes T to B before delegating to the
// wrapped codec; Decode takes the wrapped codec's B result back to T.
type TransformParams struct {
	Encode  func(v interface{}) (interface{}, error)
	Decode  func(v interface{}) (interface{}, error)
	Default interface{}
}

type transformCodec struct {
	inner  Codec
	params TransformParams
}

// Transform wraps inner so that callers see values in the transform's T
// domain instead of inner's native domain. Stacking Transform calls
// composes: encode runs outermost-params-first into inner, decode runs
// inner-first then outermost-params-last.
func Transform(inner Codec, params TransformParams) Codec {
	return transformCodec{inner: inner, params: params}
}

func (t transformCodec) WireType() wire.WireType { return t.inner.WireType() }
func (t transformCodec) Default() interface{}    { return t.params.Default }
func (t transformCodec) IsDefault(v interface{}) bool {
	return reflect.DeepEqual(v, t.params.Default)
}

func (t transformCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	b, err := t.params.Encode(v)
	if err != nil {
		return err
	}
	return t.inner.Encode(b, buf)
}

func (t transformCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	b, err := t.inner.Decode(buf)
	if err != nil {
		return nil, err
	}
	return t.params.Decode(b)
}

func (t transformCodec) Length(v interface{}) int {
	b, err := t.params.Encode(v)
	if err != nil {
		return 0
	}
	return t.inner.Length(b)
}
