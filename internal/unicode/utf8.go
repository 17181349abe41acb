package unicode

import "github.com/lifthrasiir/encoding/internal/codecapi"

// UTF8Encoder encodes Unicode scalars as UTF-8. It never fails: UTF-8
// represents every scalar value in U+0000..U+D7FF ∪ U+E000..U+10FFFF
// (spec §8 "encodings claiming full Unicode coverage").
type UTF8Encoder struct{}

func NewUTF8Encoder() *UTF8Encoder { return &UTF8Encoder{} }

func (e *UTF8Encoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	for _, c := range input {
		switch {
		case c < 0x80:
			output.WriteByte(byte(c))
		case c < 0x800:
			output.WriteByte(0xC0 | byte(c>>6))
			output.WriteByte(0x80 | byte(c&0x3F))
		case c < 0x10000:
			output.WriteByte(0xE0 | byte(c>>12))
			output.WriteByte(0x80 | byte((c>>6)&0x3F))
			output.WriteByte(0x80 | byte(c&0x3F))
		default:
			output.WriteByte(0xF0 | byte(c>>18))
			output.WriteByte(0x80 | byte((c>>12)&0x3F))
			output.WriteByte(0x80 | byte((c>>6)&0x3F))
			output.WriteByte(0x80 | byte(c&0x3F))
		}
	}
	return len(input), nil
}

func (e *UTF8Encoder) RawFinish(codecapi.ByteWriter) *codecapi.Error { return nil }

func (e *UTF8Encoder) Clone() codecapi.RawEncoder { return NewUTF8Encoder() }

// UTF8Decoder is the four-state DFA described in spec §4.2: ASCII,
// 2-byte, 3-byte (with restricted second-byte ranges for E0/ED to
// reject overlong encodings and surrogates) and 4-byte (restricted
// for F0/F4 to reject overlong sequences and codepoints past
// U+10FFFF). Pending state is the partial codepoint's bytes plus how
// many continuation bytes are still required, so a sequence may be
// split across arbitrary RawFeed calls.
type UTF8Decoder struct {
	buf  [4]byte
	n    int // bytes buffered so far for the in-progress sequence
	need int // total bytes required to complete it; 0 means idle
}

func NewUTF8Decoder() *UTF8Decoder { return &UTF8Decoder{} }

func (d *UTF8Decoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	carried := d.n // bytes already buffered before this call began
	i := 0
	for i < len(input) {
		b := input[i]
		if d.need == 0 {
			switch {
			case b < 0x80:
				output.WriteRune(rune(b))
				i++
				continue
			case b >= 0xC2 && b <= 0xDF:
				d.buf[0], d.n, d.need = b, 1, 2
			case b >= 0xE0 && b <= 0xEF:
				d.buf[0], d.n, d.need = b, 1, 3
			case b >= 0xF0 && b <= 0xF4:
				d.buf[0], d.n, d.need = b, 1, 4
			default:
				// Invalid lead byte: a bare continuation byte, or one
				// of the overlong/out-of-range leads 0xC0/0xC1/0xF5-0xFF.
				// Maximal subpart length is 0; nothing consumed.
				return i, codecapi.NewErrorLen(i, "invalid sequence", 1)
			}
			carried = 0
			i++
			continue
		}

		valid := b&0xC0 == 0x80
		if valid && d.n == 1 {
			switch d.buf[0] {
			case 0xE0:
				valid = b >= 0xA0 && b <= 0xBF
			case 0xED:
				valid = b >= 0x80 && b <= 0x9F
			case 0xF0:
				valid = b >= 0x90 && b <= 0xBF
			case 0xF4:
				valid = b >= 0x80 && b <= 0x8F
			}
		}
		if !valid {
			thisCallBytes := d.n - carried
			if thisCallBytes < 1 {
				thisCallBytes = 1 // guarantee forward progress (spec §5)
			}
			start := i - thisCallBytes
			if start < 0 {
				start = 0
			}
			d.n, d.need = 0, 0
			return start, codecapi.NewErrorLen(start, "invalid sequence", thisCallBytes)
		}

		d.buf[d.n] = b
		d.n++
		i++
		if d.n == d.need {
			output.WriteRune(decodeUTF8(d.buf[:d.n]))
			d.n, d.need = 0, 0
		}
	}
	return len(input), nil
}

// RawFinish reports an error if a sequence was left incomplete.
func (d *UTF8Decoder) RawFinish(codecapi.StringWriter) *codecapi.Error {
	if d.need != 0 {
		n := d.n
		d.n, d.need = 0, 0
		return codecapi.NewErrorLen(0, "incomplete sequence", n)
	}
	return nil
}

func (d *UTF8Decoder) Clone() codecapi.RawDecoder { return NewUTF8Decoder() }

func decodeUTF8(b []byte) rune {
	switch len(b) {
	case 2:
		return rune(b[0]&0x1F)<<6 | rune(b[1]&0x3F)
	case 3:
		return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
	default:
		return rune(b[0]&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
	}
}
