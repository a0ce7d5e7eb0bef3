package protolite

import (
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	m, err := Message(
		F("id", Int32(1)),
		F("name", String(2)),
		F("tags", Repeated.Expanded.String(3)),
	)
	if err != nil {
		t.Fatal(err)
	}

	buf, err := m.Encode(map[string]interface{}{
		"id":   int32(7),
		"name": "hello",
		"tags": []string{"a", "b"},
	}, NewBuffer())
	if err != nil {
		t.Fatal(err)
	}

	hex := buf.ToHex()
	decodeBuf, err := BufferFromHex(hex)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := m.Decode(decodeBuf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded["id"] != int32(7) {
		t.Errorf("id = %v", decoded["id"])
	}
	if decoded["name"] != "hello" {
		t.Errorf("name = %v", decoded["name"])
	}
}

func TestRepeatedConstructorsSetMode(t *testing.T) {
	if Repeated.Int32(1).Repeated == 0 {
		t.Error("Repeated.Int32 should not be RepeatNone")
	}
	if Repeated.Expanded.String(1).Repeated == 0 {
		t.Error("Repeated.Expanded.String should not be RepeatNone")
	}
}

func TestSelfReferencingMessage(t *testing.T) {
	node := NewSelfReferencingMessage()
	err := InitMessage(node,
		F("value", Int32(1)),
		F("children", Repeated.Expanded.Submessage(2, node)),
	)
	if err != nil {
		t.Fatal(err)
	}

	value := map[string]interface{}{
		"value": int32(1),
		"children": []interface{}{
			map[string]interface{}{"value": int32(2), "children": []interface{}{}},
		},
	}
	buf, err := node.Encode(value, NewBuffer())
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := node.Decode(BufferFromBytes(buf.WrittenBytes()))
	if err != nil {
		t.Fatal(err)
	}
	if decoded["value"] != int32(1) {
		t.Errorf("value = %v", decoded["value"])
	}
}
