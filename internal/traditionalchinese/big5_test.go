package traditionalchinese

import (
	"testing"

	"github.com/lifthrasiir/encoding/internal/codecapi"
)

func TestBig5EncodeDecodeRoundTrip(t *testing.T) {
	enc := Big5.NewEncoder()
	bsink := codecapi.NewByteSink(8)
	if _, err := enc.RawFeed([]rune("中文"), bsink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dec := Big5.NewDecoder()
	ssink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed(bsink.Bytes, ssink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ssink.String(), "中文"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBig5DecodeHKSCSPairEntry(t *testing.T) {
	dec := Big5.NewDecoder()
	sink := codecapi.NewStringSink(8)
	if _, err := dec.RawFeed([]byte{0x88, 0x62}, sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := sink.String(), "Ê̄"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBig5DecodeInvalidTrail(t *testing.T) {
	dec := Big5.NewDecoder()
	sink := codecapi.NewStringSink(8)
	_, err := dec.RawFeed([]byte{0xA4, 0x00}, sink)
	if err == nil {
		t.Fatal("expected an error for an out-of-range trail byte")
	}
	if err.Len != 2 {
		t.Fatalf("got Len %d, want 2 (both lead and rejected trail byte)", err.Len)
	}
}
