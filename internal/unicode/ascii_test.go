package unicode

import (
	"testing"

	"github.com/lifthrasiir/encoding/internal/codecapi"
)

func TestASCIIRoundTrip(t *testing.T) {
	enc := NewASCIIEncoder()
	sink := codecapi.NewByteSink(8)
	n, err := enc.RawFeed([]rune("Hello"), sink)
	if err != nil || n != 5 {
		t.Fatalf("RawFeed = %d, %v", n, err)
	}
	if got := string(sink.Bytes); got != "Hello" {
		t.Fatalf("Bytes = %q", got)
	}
}

func TestASCIIEncodeRejectsHighRune(t *testing.T) {
	enc := NewASCIIEncoder()
	sink := codecapi.NewByteSink(8)
	n, err := enc.RawFeed([]rune{'a', 0x80}, sink)
	if err == nil {
		t.Fatal("expected error for non-ASCII rune")
	}
	if n != 1 {
		t.Fatalf("processed = %d, want 1", n)
	}
}

func TestASCIIDecodeRejectsHighByte(t *testing.T) {
	dec := NewASCIIDecoder()
	sink := codecapi.NewStringSink(8)
	n, err := dec.RawFeed([]byte{'a', 0x80}, sink)
	if err == nil {
		t.Fatal("expected error for high byte")
	}
	if n != 1 || err.Upto != 1 {
		t.Fatalf("n=%d err.Upto=%d, want 1,1", n, err.Upto)
	}
}
