// Package encoding implements the WHATWG Encoding Standard's character
// encoding conversions: a label-driven registry of codecs, each
// exposing an incremental, restartable raw_feed/raw_finish contract,
// and a driver that applies that contract's errors to a pluggable
// error-recovery trap.
//
// # Codecs
//
// A Codec names an encoding and constructs fresh, independent
// encoder/decoder instances. Constructing per call (rather than
// sharing one stateful instance) keeps concurrent conversions of the
// same encoding safe without locking, matching the per-stream state
// the standard describes.
//
// # Streaming
//
// RawEncoder and RawDecoder are restartable: RawFeed may be called any
// number of times with arbitrary chunk boundaries, and the returned
// state must resume exactly where the previous call left off. Encode
// and Decode are the non-streaming convenience entry points built on
// top of that contract.
package encoding

import "github.com/lifthrasiir/encoding/internal/codecapi"

// ByteWriter receives bytes produced by an encoder.
type ByteWriter = codecapi.ByteWriter

// StringWriter receives runes or strings produced by a decoder.
type StringWriter = codecapi.StringWriter

// RawEncoder converts runes to bytes incrementally. See package doc
// for the streaming contract.
type RawEncoder = codecapi.RawEncoder

// RawDecoder converts bytes to runes incrementally. See package doc
// for the streaming contract.
type RawDecoder = codecapi.RawDecoder

// CodecError reports a codec's inability to process input at a given
// position, with Len identifying how many input units the codec's
// advance policy attributes to the failure (spec: the WHATWG "maximal
// subpart" rule for UTF-8, the DBCS lead/trail rule for two-byte
// families, and 1 for every stateless single-byte codec).
type CodecError = codecapi.Error

// NewByteSink returns a ByteWriter backed by an in-memory byte slice,
// pre-sized to capHint bytes.
func NewByteSink(capHint int) *codecapi.ByteSink { return codecapi.NewByteSink(capHint) }

// NewStringSink returns a StringWriter backed by a strings.Builder,
// pre-sized to capHint bytes.
func NewStringSink(capHint int) *codecapi.StringSink { return codecapi.NewStringSink(capHint) }

// Codec names one encoding and constructs fresh codec instances for
// it. Instances are never shared across calls so that concurrent
// conversions of the same Codec need no external synchronization.
type Codec struct {
	// Name is the encoding's canonical label (spec component H,
	// "label resolution"), e.g. "utf-8", "shift_jis", "gb18030".
	Name string

	NewEncoder func() RawEncoder
	NewDecoder func() RawDecoder
}
