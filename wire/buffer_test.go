package wire

import "testing"

func TestBufferGrowsWhenOwned(t *testing.T) {
	b := NewWireBuffer()
	for i := 0; i < 1000; i++ {
		if err := b.WriteVarint(uint64(i)); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	if b.WrittenLength() == 0 {
		t.Fatal("expected bytes written")
	}
}

func TestBorrowedBufferRejectsOverflow(t *testing.T) {
	b := NewWireBufferFromBytes(make([]byte, 2))
	b.Seek(0)
	if err := b.WriteVarint(1 << 20); err != ErrBufferOverflow {
		t.Errorf("expected ErrBufferOverflow, got %v", err)
	}
}

func TestToShrunkSharesAndTrims(t *testing.T) {
	b := NewWireBuffer()
	if err := b.WriteString("hi"); err != nil {
		t.Fatal(err)
	}
	shrunk := b.ToShrunk()
	if shrunk.Capacity() != b.WrittenLength() {
		t.Errorf("shrunk capacity %d, want %d", shrunk.Capacity(), b.WrittenLength())
	}
	if shrunk.Tell() != 0 {
		t.Errorf("shrunk cursor %d, want 0", shrunk.Tell())
	}
}

func TestSliceAdvancesParentAndIsolatesChild(t *testing.T) {
	b := NewWireBuffer()
	if err := b.WriteString("abc"); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteString("def"); err != nil {
		t.Fatal(err)
	}
	b.Seek(0)
	length, err := b.ReadVarint()
	if err != nil {
		t.Fatal(err)
	}
	sub, err := b.Slice(int(length))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(sub.WrittenBytes()), "abc"; got != want {
		t.Errorf("sub buffer = %q, want %q", got, want)
	}

	rest, err := b.ReadString()
	if err != nil {
		t.Fatal(err)
	}
	if rest != "def" {
		t.Errorf("parent cursor after Slice: got %q, want %q", rest, "def")
	}
}

func TestResetClearsBuffer(t *testing.T) {
	b := NewWireBuffer()
	if err := b.WriteString("hello"); err != nil {
		t.Fatal(err)
	}
	b.Reset()
	if b.WrittenLength() != 0 || b.Tell() != 0 {
		t.Errorf("reset did not clear buffer: written=%d tell=%d", b.WrittenLength(), b.Tell())
	}
}

func TestFromHexAndToHex(t *testing.T) {
	b, err := FromHex("0801")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.ToHex(), "0801"; got != want {
		t.Errorf("ToHex() = %q, want %q", got, want)
	}
}
