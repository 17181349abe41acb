package charmap

import (
	"testing"

	"github.com/lifthrasiir/encoding/internal/codecapi"
)

func TestISO88592DecodeKnownByte(t *testing.T) {
	dec := ISO88592.NewDecoder()
	sink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed([]byte{0xAC}, sink); err != nil { // Ź
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := sink.String(), "Ź"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestISO88596DecodeUnassignedByteIsInvalid(t *testing.T) {
	dec := ISO88596.NewDecoder()
	sink := codecapi.NewStringSink(8)
	_, err := dec.RawFeed([]byte{0xA5}, sink) // unassigned in ISO-8859-6
	if err == nil {
		t.Fatal("expected an error for an unassigned byte")
	}
}

func TestWindows1252EncodeDecodeRoundTrip(t *testing.T) {
	enc := Windows1252.NewEncoder()
	bsink := codecapi.NewByteSink(8)
	if _, err := enc.RawFeed([]rune("café€"), bsink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dec := Windows1252.NewDecoder()
	ssink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed(bsink.Bytes, ssink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ssink.String(), "café€"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCharmapEncodeUnrepresentable(t *testing.T) {
	enc := ISO88592.NewEncoder()
	sink := codecapi.NewByteSink(8)
	_, err := enc.RawFeed([]rune{0x4E2D}, sink) // 中, not in Latin-2
	if err == nil {
		t.Fatal("expected an error for an unrepresentable character")
	}
}
