package korean

import (
	"testing"

	"github.com/lifthrasiir/encoding/internal/codecapi"
)

func TestWindows949DecodeKnownPair(t *testing.T) {
	dec := Windows949.NewDecoder()
	sink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed([]byte{0xC7, 0xD1}, sink); err != nil { // 한
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dec.RawFinish(sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := sink.String(), "한"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWindows949EncodeDecodeRoundTrip(t *testing.T) {
	enc := Windows949.NewEncoder()
	bsink := codecapi.NewByteSink(8)
	if _, err := enc.RawFeed([]rune("한글"), bsink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dec := Windows949.NewDecoder()
	ssink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed(bsink.Bytes, ssink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ssink.String(), "한글"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestWindows949DecodeRejectedTrailIsAlsoValidLead reproduces the
// DBCS advance rule: when the rejected trail byte is itself a valid
// lead byte followed by ASCII, only the original lead byte is the
// problem.
func TestWindows949DecodeRejectedTrailIsAlsoValidLead(t *testing.T) {
	dec := Windows949.NewDecoder()
	sink := codecapi.NewStringSink(8)
	// 0xBF is a lead byte with no entry for trail 0xBF; that rejected
	// trail is itself a lead byte and is followed by ASCII 'A', so only
	// the first 0xBF is the problem.
	n, err := dec.RawFeed([]byte{0xBF, 0xBF, 'A'}, sink)
	if err == nil {
		t.Fatal("expected an error")
	}
	if n != 0 {
		t.Fatalf("n = %d, want 0", n)
	}
	if err.Len != 1 {
		t.Fatalf("Len = %d, want 1", err.Len)
	}
}

func TestWindows949DecodeSplitAcrossCalls(t *testing.T) {
	dec := Windows949.NewDecoder()
	sink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed([]byte{0xC7}, sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := dec.RawFeed([]byte{0xD1}, sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := sink.String(), "한"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
