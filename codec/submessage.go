package codec

import (
	"fmt"

	"github.com/gowire/protolite/wire"
)

type submessageCodec struct {
	msg *MessageCodec
}

// Submessage wraps a MessageCodec as a LEN-typed field codec: a varint
// length prefix, computed from msg.Length, followed by msg's own encode.
func Submessage(msg *MessageCodec) Codec { return submessageCodec{msg: msg} }

func (s submessageCodec) WireType() wire.WireType { return wire.LEN }
func (s submessageCodec) Default() interface{}    { return s.msg.DefaultValue() }
func (s submessageCodec) IsDefault(v interface{}) bool {
	m, ok := v.(Message)
	if !ok {
		return false
	}
	return s.msg.IsDefaultValue(m)
}

func (s submessageCodec) Encode(v interface{}, buf *wire.WireBuffer) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("codec: submessage: expected a Message, got %T", v)
	}
	length := s.msg.Length(m)
	if err := buf.WriteVarint(uint64(length)); err != nil {
		return err
	}
	_, err := s.msg.Encode(m, buf)
	return err
}

func (s submessageCodec) Decode(buf *wire.WireBuffer) (interface{}, error) {
	length, err := buf.ReadVarint()
	if err != nil {
		return nil, err
	}
	sub, err := buf.Slice(int(length))
	if err != nil {
		return nil, err
	}
	return s.msg.Decode(sub)
}

func (s submessageCodec) Length(v interface{}) int {
	m, ok := v.(Message)
	if !ok {
		return 0
	}
	inner := s.msg.Length(m)
	return wire.VarintLength(uint64(inner)) + inner
}
