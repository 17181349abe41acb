package unicode

import "github.com/lifthrasiir/encoding/internal/codecapi"

// UTF16Encoder encodes Unicode scalars as UTF-16 code units in either
// byte order. It never fails: every representable scalar has either a
// direct 16-bit form or a surrogate-pair form (spec §8 "UTF-16
// fully").
type UTF16Encoder struct {
	bigEndian bool
}

func NewUTF16LEEncoder() *UTF16Encoder { return &UTF16Encoder{bigEndian: false} }
func NewUTF16BEEncoder() *UTF16Encoder { return &UTF16Encoder{bigEndian: true} }

func (e *UTF16Encoder) writeUnit(output codecapi.ByteWriter, u uint16) {
	if e.bigEndian {
		output.WriteByte(byte(u >> 8))
		output.WriteByte(byte(u))
	} else {
		output.WriteByte(byte(u))
		output.WriteByte(byte(u >> 8))
	}
}

func (e *UTF16Encoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	output.Reserve(len(input) * 2)
	for _, c := range input {
		if c < 0x10000 {
			e.writeUnit(output, uint16(c))
			continue
		}
		c -= 0x10000
		e.writeUnit(output, uint16(0xD800+(c>>10)))
		e.writeUnit(output, uint16(0xDC00+(c&0x3FF)))
	}
	return len(input), nil
}

func (e *UTF16Encoder) RawFinish(codecapi.ByteWriter) *codecapi.Error { return nil }

func (e *UTF16Encoder) Clone() codecapi.RawEncoder {
	return &UTF16Encoder{bigEndian: e.bigEndian}
}

// UTF16Decoder holds a byte-pair buffer (for an odd trailing byte
// split across calls) plus an optional pending high surrogate (spec
// §4.2 "UTF-16 decoder"). A low surrogate with no pending high, or a
// high surrogate followed by a non-low-surrogate unit, is an error
// with the advance given in spec §4.2's table (2 or 4 bytes).
type UTF16Decoder struct {
	bigEndian      bool
	oddByte        byte
	hasOdd         bool
	pendingHigh    uint16
	hasPendingHigh bool
	highFromPrior  bool // pendingHigh was set in an earlier RawFeed call
}

func NewUTF16LEDecoder() *UTF16Decoder { return &UTF16Decoder{bigEndian: false} }
func NewUTF16BEDecoder() *UTF16Decoder { return &UTF16Decoder{bigEndian: true} }

func (d *UTF16Decoder) unit(b0, b1 byte) uint16 {
	if d.bigEndian {
		return uint16(b0)<<8 | uint16(b1)
	}
	return uint16(b1)<<8 | uint16(b0)
}

func (d *UTF16Decoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input) / 2)
	highFromPrior := d.hasPendingHigh && d.highFromPrior
	i := 0
	for {
		var u uint16
		var thisCallBytes int
		if d.hasOdd {
			if i >= len(input) {
				break
			}
			u = d.unit(d.oddByte, input[i])
			thisCallBytes = 1
			i++
			d.hasOdd = false
		} else {
			if i+1 >= len(input) {
				if i < len(input) {
					d.oddByte = input[i]
					d.hasOdd = true
					i++
				}
				break
			}
			u = d.unit(input[i], input[i+1])
			thisCallBytes = 2
			i += 2
		}

		switch {
		case d.hasPendingHigh:
			if u >= 0xDC00 && u <= 0xDFFF {
				r := 0x10000 + (rune(d.pendingHigh)-0xD800)<<10 + (rune(u) - 0xDC00)
				output.WriteRune(r)
				d.hasPendingHigh = false
			} else {
				highBytes := 0
				if !highFromPrior {
					highBytes = 2
				}
				length := highBytes + thisCallBytes
				start := i - length
				if start < 0 {
					start = 0
				}
				d.hasPendingHigh = false
				return start, codecapi.NewErrorLen(start, "invalid sequence", length)
			}
		case u >= 0xD800 && u <= 0xDBFF:
			d.pendingHigh = u
			d.hasPendingHigh = true
			d.highFromPrior = false
			highFromPrior = false
		case u >= 0xDC00 && u <= 0xDFFF:
			start := i - thisCallBytes
			if start < 0 {
				start = 0
			}
			return start, codecapi.NewErrorLen(start, "invalid sequence", thisCallBytes)
		default:
			output.WriteRune(rune(u))
		}
	}
	if d.hasPendingHigh {
		d.highFromPrior = true
	}
	return i, nil
}

// RawFinish reports an error if a lone high surrogate or an odd
// trailing byte was left pending.
func (d *UTF16Decoder) RawFinish(codecapi.StringWriter) *codecapi.Error {
	switch {
	case d.hasPendingHigh:
		d.hasPendingHigh = false
		return codecapi.NewErrorLen(0, "incomplete sequence", 2)
	case d.hasOdd:
		d.hasOdd = false
		return codecapi.NewErrorLen(0, "incomplete sequence", 1)
	}
	return nil
}

func (d *UTF16Decoder) Clone() codecapi.RawDecoder {
	return &UTF16Decoder{bigEndian: d.bigEndian}
}
