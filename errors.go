package encoding

import "errors"

// Sentinel errors. Encode and Decode report an unrecovered error as a
// *DriverError, which unwraps to ErrUnrepresentable or
// ErrInvalidSequence.
var (
	// ErrUnknownEncoding is the sentinel for a label that does not
	// resolve to any registered Codec. Lookup reports that case through
	// its ok result and does not return this error.
	ErrUnknownEncoding = errors.New("encoding: unknown encoding label")

	// ErrUnrepresentable indicates Strict trap rejected a character an
	// encoder could not represent.
	ErrUnrepresentable = errors.New("encoding: character unrepresentable in target encoding")

	// ErrInvalidSequence indicates Strict trap rejected a decoder
	// input byte sequence it could not interpret.
	ErrInvalidSequence = errors.New("encoding: invalid byte sequence for encoding")
)

// DriverError carries a CodecError's position, length and cause
// (Upto, Len, Reason) together with the high-level operation (decode
// or encode) and label that produced it. Unwrap yields the matching
// sentinel error, not the CodecError itself. It is for callers that want the
// precise failure position without subscribing to a recovery Trap.
type DriverError struct {
	Op     string // "encode" or "decode"
	Label  string
	Upto   int
	Len    int
	Reason string
}

func (e *DriverError) Error() string {
	return "encoding: " + e.Op + " " + e.Label + ": " + e.Reason
}

func (e *DriverError) Unwrap() error {
	switch e.Reason {
	case "unrepresentable character":
		return ErrUnrepresentable
	default:
		return ErrInvalidSequence
	}
}
