// Package dbcs implements the shared two-byte (DBCS) state machine
// described in spec §4.2 "DBCS family": a pending-lead-byte slot, a
// linear index computed from (lead, trail), and the codec-specific
// advance policy on a failed trail byte. EUC-KR/Windows-949, EUC-JP
// and Shift_JIS/Windows-932 are all instances of this one machine,
// configured with a lead predicate, an index origin and an optional
// single-byte high slice (spec: "Shift_JIS also maps single-byte
// 0xA1..0xDF to half-width katakana directly").
package dbcs

import (
	"github.com/lifthrasiir/encoding/internal/codecapi"
	"github.com/lifthrasiir/encoding/internal/index"
)

// Codec parameterizes the shared DBCS machine for one encoding.
type Codec struct {
	Table *index.Table

	// IsLead reports whether b can start a two-byte sequence.
	IsLead func(b byte) bool
	// LeadBase/TrailBase/TrailSpan define the linear index formula:
	// index = int(lead-LeadBase)*TrailSpan + int(trail-TrailBase).
	LeadBase, TrailBase byte
	TrailSpan           int

	// SingleHigh optionally maps a high byte (>= 0x80) directly to a
	// codepoint without consuming a second byte (Shift_JIS halfwidth
	// katakana). EncodeLow is its encoder-side inverse. Both may be
	// nil.
	SingleHigh func(b byte) (rune, bool)
	EncodeLow  func(r rune) (byte, bool)

	// RowOf/LeadOf fold a non-contiguous lead-byte range (Shift_JIS's
	// 0x81-0x9F and 0xE0-0xFC) into a contiguous row space. When nil,
	// the row is lead-LeadBase, i.e. the lead range is already
	// contiguous.
	RowOf  func(lead byte) byte
	LeadOf func(row byte) byte
}

func (c *Codec) toIndex(lead, trail byte) int {
	row := lead - c.LeadBase
	if c.RowOf != nil {
		row = c.RowOf(lead)
	}
	return int(row)*c.TrailSpan + int(trail-c.TrailBase)
}

func (c *Codec) fromIndex(idx int) (lead, trail byte) {
	row := byte(idx / c.TrailSpan)
	if c.LeadOf != nil {
		lead = c.LeadOf(row)
	} else {
		lead = row + c.LeadBase
	}
	trail = byte(idx%c.TrailSpan) + c.TrailBase
	return
}

// Encoder is the stateless DBCS encoder.
type Encoder struct{ c *Codec }

func (c *Codec) NewEncoder() *Encoder { return &Encoder{c: c} }

func (e *Encoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	for i, r := range input {
		if r < 0x80 {
			output.WriteByte(byte(r))
			continue
		}
		if e.c.EncodeLow != nil {
			if b, ok := e.c.EncodeLow(r); ok {
				output.WriteByte(b)
				continue
			}
		}
		idx, ok := e.c.Table.Backward(r)
		if !ok {
			return i, codecapi.NewError(i, "unrepresentable character")
		}
		lead, trail := e.c.fromIndex(idx)
		output.WriteByte(lead)
		output.WriteByte(trail)
	}
	return len(input), nil
}

func (e *Encoder) RawFinish(codecapi.ByteWriter) *codecapi.Error { return nil }

func (e *Encoder) Clone() codecapi.RawEncoder { return e.c.NewEncoder() }

// Decoder holds the pending-lead-byte slot (spec §3 codec state).
type Decoder struct {
	c            *Codec
	lead         byte
	has          bool
	leadFromPrio bool // pending lead was set in an earlier RawFeed call
}

func (c *Codec) NewDecoder() *Decoder { return &Decoder{c: c} }

func (d *Decoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	leadFromPrior := d.has && d.leadFromPrio
	i := 0
	for i < len(input) {
		b := input[i]
		if !d.has {
			if b < 0x80 {
				output.WriteRune(rune(b))
				i++
				continue
			}
			if d.c.SingleHigh != nil {
				if r, ok := d.c.SingleHigh(b); ok {
					output.WriteRune(r)
					i++
					continue
				}
			}
			if d.c.IsLead(b) {
				d.lead = b
				d.has = true
				leadFromPrior = false
				i++
				continue
			}
			return i, codecapi.NewError(i, "invalid sequence")
		}

		trail := b
		idx := d.c.toIndex(d.lead, trail)
		r, ok := d.c.Table.Forward(idx)
		d.has = false
		if ok {
			output.WriteRune(r)
			i++
			continue
		}

		// Failed trail byte: spec §4.2's DBCS advance rule. If the
		// rejected trail byte is itself a valid lead byte and the
		// byte after it is ASCII, only the original lead is the
		// problem (advance 1) and the rejected byte is reprocessed
		// fresh; otherwise both bytes are the problem (advance 2).
		nextIsASCII := i+1 < len(input) && input[i+1] < 0x80
		leadBytesThisCall := 1
		if leadFromPrior {
			leadBytesThisCall = 0
		}
		if d.c.IsLead(trail) && nextIsASCII {
			start := i - leadBytesThisCall
			if start < 0 {
				start = 0
			}
			length := leadBytesThisCall
			if length < 1 {
				length = 1
			}
			return start, codecapi.NewErrorLen(start, "invalid sequence", length)
		}
		length := leadBytesThisCall + 1
		start := i + 1 - length
		if start < 0 {
			start = 0
		}
		return start, codecapi.NewErrorLen(start, "invalid sequence", length)
	}
	if d.has {
		d.leadFromPrio = true
	}
	return i, nil
}

// RawFinish reports an error if a lead byte was left pending.
func (d *Decoder) RawFinish(codecapi.StringWriter) *codecapi.Error {
	if d.has {
		d.has = false
		return codecapi.NewErrorLen(0, "incomplete sequence", 1)
	}
	return nil
}

func (d *Decoder) Clone() codecapi.RawDecoder { return d.c.NewDecoder() }
