package unicode

import (
	"testing"

	"github.com/lifthrasiir/encoding/internal/codecapi"
)

func TestUTF16LERoundTripSurrogatePair(t *testing.T) {
	enc := NewUTF16LEEncoder()
	sink := codecapi.NewByteSink(8)
	if _, err := enc.RawFeed([]rune{0x1F600}, sink); err != nil { // 😀
		t.Fatalf("unexpected error: %v", err)
	}

	dec := NewUTF16LEDecoder()
	out := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed(sink.Bytes, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dec.RawFinish(out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), string(rune(0x1F600)); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUTF16LEDecodeLoneLowSurrogateIsInvalid(t *testing.T) {
	dec := NewUTF16LEDecoder()
	out := codecapi.NewStringSink(8)
	n, err := dec.RawFeed([]byte{0x00, 0xDC}, out) // lone low surrogate, LE
	if err == nil {
		t.Fatal("expected an error")
	}
	if n != 0 || err.Len != 2 {
		t.Fatalf("n=%d Len=%d, want 0,2", n, err.Len)
	}
}

func TestUTF16LEDecodeOddTrailingByteIsIncomplete(t *testing.T) {
	dec := NewUTF16LEDecoder()
	out := codecapi.NewStringSink(8)
	dec.RawFeed([]byte{'a', 0x00, 0x41}, out)
	if err := dec.RawFinish(out); err == nil {
		t.Fatal("expected incomplete-sequence error")
	}
}
