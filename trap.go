package encoding

import "strconv"

// Trap decides what happens when a RawEncoder or RawDecoder reports a
// CodecError: skip the offending input, substitute a placeholder, or
// abort the whole conversion. It is consulted by Encode/Decode, never
// by a codec itself (spec component F, "trap protocol").
type Trap interface {
	// HandleEncode is called with the rune that could not be encoded
	// (0 for an error reported by RawFinish). It returns whether the
	// conversion should continue (with that rune skipped). Encode does
	// not surface the returned err; when recovered is false it reports
	// a *DriverError built from the codec's error instead.
	HandleEncode(r rune, output ByteWriter) (recovered bool, err error)

	// HandleDecode is called with the raw bytes a decoder rejected
	// (CodecError.Len of them, starting at CodecError.Upto; nil for an
	// error reported by RawFinish). It returns whether the conversion
	// should continue past them. As with HandleEncode, Decode does not
	// surface the returned err.
	HandleDecode(bad []byte, output StringWriter) (recovered bool, err error)
}

// Strict aborts the conversion on the first error, reporting it as a
// DriverError.
type Strict struct{}

func (Strict) HandleEncode(r rune, output ByteWriter) (bool, error) { return false, ErrUnrepresentable }
func (Strict) HandleDecode(bad []byte, output StringWriter) (bool, error) {
	return false, ErrInvalidSequence
}

// Replace substitutes a fixed placeholder for every error: "?" (0x3F)
// for an unencodable character, U+FFFD for an undecodable sequence.
type Replace struct{}

func (Replace) HandleEncode(r rune, output ByteWriter) (bool, error) {
	output.WriteByte('?')
	return true, nil
}

func (Replace) HandleDecode(bad []byte, output StringWriter) (bool, error) {
	output.WriteRune('�')
	return true, nil
}

// Ignore silently drops the offending input and continues.
type Ignore struct{}

func (Ignore) HandleEncode(r rune, output ByteWriter) (bool, error)      { return true, nil }
func (Ignore) HandleDecode(bad []byte, output StringWriter) (bool, error) { return true, nil }

// NcrEscape substitutes a numeric character reference ("&#1234;") for
// an unencodable character. It does not apply to decode errors, which
// it treats the same way Replace does (there is no source character
// to number).
type NcrEscape struct{}

func (NcrEscape) HandleEncode(r rune, output ByteWriter) (bool, error) {
	output.WriteBytes([]byte("&#" + strconv.Itoa(int(r)) + ";"))
	return true, nil
}

func (NcrEscape) HandleDecode(bad []byte, output StringWriter) (bool, error) {
	output.WriteRune('�')
	return true, nil
}
