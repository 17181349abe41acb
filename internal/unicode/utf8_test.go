package unicode

import (
	"testing"

	"github.com/lifthrasiir/encoding/internal/codecapi"
)

func decodeAll(dec *UTF8Decoder, chunks ...[]byte) (string, *codecapi.Error) {
	sink := codecapi.NewStringSink(32)
	for _, c := range chunks {
		if _, err := dec.RawFeed(c, sink); err != nil {
			return sink.String(), err
		}
	}
	if err := dec.RawFinish(sink); err != nil {
		return sink.String(), err
	}
	return sink.String(), nil
}

func TestUTF8DecodeASCIIAndMultibyte(t *testing.T) {
	got, err := decodeAll(NewUTF8Decoder(), []byte("a\xC3\xA9b")) // "aéb"
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "aéb"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestUTF8DecodeTruncatedLeadThenASCII reproduces the documented
// maximal-subpart scenario: a lead byte promising a continuation
// followed by an ASCII byte reports exactly the lead byte as invalid
// and reprocesses the ASCII byte.
func TestUTF8DecodeTruncatedLeadThenASCII(t *testing.T) {
	dec := NewUTF8Decoder()
	sink := codecapi.NewStringSink(8)
	n, err := dec.RawFeed([]byte{0xC2, 'A'}, sink)
	if err == nil {
		t.Fatal("expected an error")
	}
	if n != 0 || err.Upto != 0 || err.Len != 1 {
		t.Fatalf("n=%d Upto=%d Len=%d, want 0,0,1", n, err.Upto, err.Len)
	}
}

func TestUTF8DecodeSplitAcrossCalls(t *testing.T) {
	dec := NewUTF8Decoder()
	got, err := decodeAll(dec, []byte{0xE2}, []byte{0x82}, []byte{0xAC}) // €
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "€"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUTF8DecodeIncompleteAtFinish(t *testing.T) {
	dec := NewUTF8Decoder()
	sink := codecapi.NewStringSink(8)
	dec.RawFeed([]byte{0xE2, 0x82}, sink)
	if err := dec.RawFinish(sink); err == nil {
		t.Fatal("expected incomplete-sequence error")
	}
}

func TestUTF8EncodeRoundTrip(t *testing.T) {
	enc := NewUTF8Encoder()
	sink := codecapi.NewByteSink(8)
	if _, err := enc.RawFeed([]rune("€a"), sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := string(sink.Bytes), "€a"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
