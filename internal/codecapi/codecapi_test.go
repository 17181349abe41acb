package codecapi

import "testing"

func TestByteSink(t *testing.T) {
	s := NewByteSink(4)
	s.WriteByte('a')
	s.WriteBytes([]byte("bcd"))
	if got, want := string(s.Bytes), "abcd"; got != want {
		t.Fatalf("Bytes = %q, want %q", got, want)
	}
}

func TestStringSink(t *testing.T) {
	s := NewStringSink(4)
	s.WriteRune('a')
	s.WriteString("bc")
	if got, want := s.String(), "abc"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestErrorLenClampedToOne(t *testing.T) {
	err := NewErrorLen(3, "invalid sequence", 0)
	if err.Len != 1 {
		t.Fatalf("Len = %d, want 1", err.Len)
	}
}
