// Package codecapi defines the small, dependency-free contract every
// codec state machine in this module is built against: output sinks
// (ByteWriter, StringWriter), the uniform error record, and the
// encoder/decoder method-set (spec §4.2, component D). It has no
// dependency on the root package, so codec packages never import the
// root package — breaking the cycle that would otherwise exist
// between the root package's registry and the per-encoding
// implementations it wires together.
package codecapi

import "strings"

// Error is the uniform codec error record (spec §3 "Codec error
// record"). Upto is the number of input units consumed before the
// problem; Cause is a short human-readable tag; Len materializes the
// "implicit problem length" spec §3/§4.2 describe as part of each
// codec's documented advance policy — callers (the driver, a trap, or
// a streaming consumer) need it to know how many input units the
// problem spans, and for several families (UTF-8's maximal-subpart
// rule, DBCS's lead/trail-dependent advance) that length is only
// knowable per-instance, not from the codec family alone.
type Error struct {
	Upto int
	Cause string
	Len  int
}

func (e *Error) Error() string {
	return e.Cause
}

// NewError builds an Error with a problem length of 1, the common
// case (single-byte/single-codepoint advance).
func NewError(upto int, cause string) *Error {
	return &Error{Upto: upto, Cause: cause, Len: 1}
}

// NewErrorLen builds an Error with an explicit problem length.
func NewErrorLen(upto int, cause string, length int) *Error {
	if length < 1 {
		length = 1
	}
	return &Error{Upto: upto, Cause: cause, Len: length}
}

// ByteWriter is the output sink for encoders (spec §4.1): a byte-only
// destination that never imposes a concrete container on the codec
// writing to it.
type ByteWriter interface {
	WriteByte(b byte)
	WriteBytes(bs []byte)
	// Reserve hints at the number of additional bytes about to be
	// written; implementations may ignore it.
	Reserve(n int)
}

// StringWriter is the output sink for decoders (spec §4.1). It only
// ever receives well-formed Unicode scalar values.
type StringWriter interface {
	WriteRune(r rune)
	WriteString(s string)
	Reserve(n int)
}

// RawEncoder is the codec contract every encoder state machine
// implements (spec §4.2, component D, encoder side).
type RawEncoder interface {
	// RawFeed consumes a prefix of input, writing bytes to output. It
	// returns the number of codepoints fully consumed before either
	// end of input (err == nil) or the first unrepresentable
	// codepoint (err != nil, err.Upto == processed).
	RawFeed(input []rune, output ByteWriter) (processed int, err *Error)
	// RawFinish flushes any pending state (trailing escape sequences
	// for stateful encoders).
	RawFinish(output ByteWriter) *Error
	// Clone returns a fresh instance of the same codec, matching the
	// encoder's type but in its zero state.
	Clone() RawEncoder
}

// RawDecoder is the codec contract every decoder state machine
// implements (spec §4.2, component D, decoder side).
type RawDecoder interface {
	RawFeed(input []byte, output StringWriter) (processed int, err *Error)
	RawFinish(output StringWriter) *Error
	Clone() RawDecoder
}

// ByteSink is a growable []byte-backed ByteWriter.
type ByteSink struct {
	Bytes []byte
}

// NewByteSink returns a ByteSink pre-sized to the given capacity hint.
func NewByteSink(capHint int) *ByteSink {
	return &ByteSink{Bytes: make([]byte, 0, capHint)}
}

func (s *ByteSink) WriteByte(b byte)     { s.Bytes = append(s.Bytes, b) }
func (s *ByteSink) WriteBytes(bs []byte) { s.Bytes = append(s.Bytes, bs...) }
func (s *ByteSink) Reserve(n int) {
	if cap(s.Bytes)-len(s.Bytes) < n {
		grown := make([]byte, len(s.Bytes), len(s.Bytes)+n)
		copy(grown, s.Bytes)
		s.Bytes = grown
	}
}

// StringSink is a strings.Builder-backed StringWriter.
type StringSink struct {
	sb strings.Builder
}

// NewStringSink returns a StringSink pre-sized to the given capacity
// hint.
func NewStringSink(capHint int) *StringSink {
	s := &StringSink{}
	s.sb.Grow(capHint)
	return s
}

func (s *StringSink) WriteRune(r rune)     { s.sb.WriteRune(r) }
func (s *StringSink) WriteString(v string) { s.sb.WriteString(v) }
func (s *StringSink) Reserve(n int)        { s.sb.Grow(n) }
func (s *StringSink) String() string       { return s.sb.String() }
