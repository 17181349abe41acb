package japanese

import (
	"testing"

	"github.com/lifthrasiir/encoding/internal/codecapi"
)

func TestEUCJPDecodeKnownPair(t *testing.T) {
	dec := EUCJP.NewDecoder()
	sink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed([]byte{0xB4, 0xC1}, sink); err != nil { // 漢
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := sink.String(), "漢"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWindows932HalfwidthKatakana(t *testing.T) {
	dec := Windows932.NewDecoder()
	sink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed([]byte{0xA1, 0xB1}, sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := sink.String(), "｡ｱ"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWindows932EncodeDecodeRoundTrip(t *testing.T) {
	enc := Windows932.NewEncoder()
	bsink := codecapi.NewByteSink(8)
	if _, err := enc.RawFeed([]rune("漢字ｱ"), bsink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dec := Windows932.NewDecoder()
	ssink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed(bsink.Bytes, ssink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ssink.String(), "漢字ｱ"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestISO2022JPModeSwitching(t *testing.T) {
	enc := ISO2022JP.NewEncoder()
	bsink := codecapi.NewByteSink(16)
	if _, err := enc.RawFeed([]rune("a漢b"), bsink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := enc.RawFinish(bsink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dec := ISO2022JP.NewDecoder()
	ssink := codecapi.NewStringSink(16)
	if _, err := dec.RawFeed(bsink.Bytes, ssink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dec.RawFinish(ssink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ssink.String(), "a漢b"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestISO2022JPDecodeEscapeSplitAcrossCalls(t *testing.T) {
	dec := ISO2022JP.NewDecoder()
	sink := codecapi.NewStringSink(8)
	// ESC ( I  selects katakana mode, delivered one byte per call.
	for _, b := range []byte{0x1B, '(', 'I', 0x21} {
		if _, err := dec.RawFeed([]byte{b}, sink); err != nil {
			t.Fatalf("unexpected error on byte %#x: %v", b, err)
		}
	}
	if got, want := sink.String(), "｡"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestISO2022JPDecodeUnknownEscapeIsInvalid(t *testing.T) {
	dec := ISO2022JP.NewDecoder()
	sink := codecapi.NewStringSink(8)
	_, err := dec.RawFeed([]byte{0x1B, '(', 'Z'}, sink)
	if err == nil {
		t.Fatal("expected an error for an unknown escape sequence")
	}
}
