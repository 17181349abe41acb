package simplifiedchinese

import "github.com/lifthrasiir/encoding/internal/codecapi"

// gb18030BMPTable is a cross-section of the irregular two-byte-pointer
// range used by GB18030's four-byte BMP plane (pointer 0..39419). The
// real mapping is GB18030's gap-laden "ranges" table excluding
// surrogates and the codepoints already reachable via GBK's two-byte
// form; full table generation is out of scope (spec §1), so only a
// handful of entries are present here.
var gb18030BMPTable = map[int]rune{
	7457:  0x1E3F, // ḿ (Latin Extended Additional)
	24027: 0x3007, // 〇
}

// gb18030Pointer computes the linear four-byte pointer (WHATWG
// Encoding Standard "gb18030 four byte pointer"): a base-10/base-126
// mixed-radix value built from the four byte offsets.
func gb18030Pointer(b1, b2, b3, b4 byte) int {
	return (int(b1-0x81)*10+int(b2-0x30))*1260 + int(b3-0x81)*10 + int(b4-0x30)
}

func gb18030Unpointer(p int) (b1, b2, b3, b4 byte) {
	b4 = byte(p%10) + 0x30
	p /= 10
	b3 = byte(p%126) + 0x81
	p /= 126
	b2 = byte(p%10) + 0x30
	p /= 10
	b1 = byte(p) + 0x81
	return
}

const (
	gb18030SupplementaryStart = 189000
	gb18030SupplementaryEnd   = 1237575 // pointer for U+10FFFF
)

func gb18030PointerToRune(p int) (rune, bool) {
	if p >= gb18030SupplementaryStart && p <= gb18030SupplementaryEnd {
		return rune(0x10000 + (p - gb18030SupplementaryStart)), true
	}
	if r, ok := gb18030BMPTable[p]; ok {
		return r, true
	}
	return 0, false
}

func gb18030RuneToPointer(r rune) (int, bool) {
	if r >= 0x10000 && r <= 0x10FFFF {
		return gb18030SupplementaryStart + int(r-0x10000), true
	}
	for p, c := range gb18030BMPTable {
		if c == r {
			return p, true
		}
	}
	return 0, false
}

// gb18030Codec wraps GBK's two-byte table and adds GB18030's one-byte
// (ASCII), four-byte (this file) forms. It is not a dbcs.Codec
// instance because the four-byte form needs its own pending-byte
// count (0..3), distinct from the two-byte lead/trail model.
type gb18030Codec struct{}

// GB18030 is the GB18030 (2005) codec.
var GB18030 = &gb18030Codec{}

type gb18030Encoder struct{}

func (c *gb18030Codec) NewEncoder() codecapi.RawEncoder { return &gb18030Encoder{} }

func (e *gb18030Encoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	for i, r := range input {
		if r < 0x80 {
			output.WriteByte(byte(r))
			continue
		}
		if idx, ok := gbkTable2(r); ok {
			lead, trail := gbkFromIndex(idx)
			output.WriteByte(lead)
			output.WriteByte(trail)
			continue
		}
		if p, ok := gb18030RuneToPointer(r); ok {
			b1, b2, b3, b4 := gb18030Unpointer(p)
			output.WriteByte(b1)
			output.WriteByte(b2)
			output.WriteByte(b3)
			output.WriteByte(b4)
			continue
		}
		return i, codecapi.NewError(i, "unrepresentable character")
	}
	return len(input), nil
}

func (e *gb18030Encoder) RawFinish(codecapi.ByteWriter) *codecapi.Error { return nil }
func (e *gb18030Encoder) Clone() codecapi.RawEncoder                    { return &gb18030Encoder{} }

// gbkTable2/gbkFromIndex expose GBK's table to the GB18030 encoder
// without duplicating it.
func gbkTable2(r rune) (int, bool)      { return GBK.Table.Backward(r) }
func gbkFromIndex(idx int) (byte, byte) { lead, trail := gbkDecompose(idx); return lead, trail }

func gbkDecompose(idx int) (byte, byte) {
	lead := byte(idx/gbkTrailSpan) + gbkLeadBase
	trail := byte(idx%gbkTrailSpan) + gbkTrailBase
	return lead, trail
}

type gb18030Decoder struct {
	pending []byte
}

func (c *gb18030Codec) NewDecoder() codecapi.RawDecoder { return &gb18030Decoder{} }

func (d *gb18030Decoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	i := 0
	for i < len(input) {
		b := input[i]

		if len(d.pending) == 0 {
			if b < 0x80 {
				output.WriteRune(rune(b))
				i++
				continue
			}
			if !gbkIsLead(b) {
				return i, codecapi.NewError(i, "invalid sequence")
			}
			d.pending = []byte{b}
			i++
			continue
		}

		if len(d.pending) == 1 {
			// Second byte: 0x30-0x39 commits to the four-byte form,
			// otherwise it is GBK's two-byte trail.
			if b >= 0x30 && b <= 0x39 {
				d.pending = append(d.pending, b)
				i++
				continue
			}
			idx := gbkIdx(d.pending[0], b)
			d.pending = nil
			r, ok := GBK.Table.Forward(idx)
			if !ok {
				return i - 1, codecapi.NewErrorLen(i-1, "invalid sequence", 2)
			}
			output.WriteRune(r)
			i++
			continue
		}

		if len(d.pending) == 2 {
			if b < 0x81 || b > 0xFE {
				start := i - 2
				d.pending = nil
				return start, codecapi.NewErrorLen(start, "invalid sequence", 2)
			}
			d.pending = append(d.pending, b)
			i++
			continue
		}

		// len(d.pending) == 3: fourth byte.
		if b < 0x30 || b > 0x39 {
			start := i - 3
			d.pending = nil
			return start, codecapi.NewErrorLen(start, "invalid sequence", 3)
		}
		p := gb18030Pointer(d.pending[0], d.pending[1], d.pending[2], b)
		start := i - 3
		d.pending = nil
		r, ok := gb18030PointerToRune(p)
		if !ok {
			return start, codecapi.NewErrorLen(start, "invalid sequence", 4)
		}
		output.WriteRune(r)
		i++
	}
	return i, nil
}

func (d *gb18030Decoder) RawFinish(codecapi.StringWriter) *codecapi.Error {
	if len(d.pending) > 0 {
		n := len(d.pending)
		d.pending = nil
		return codecapi.NewErrorLen(0, "incomplete sequence", n)
	}
	return nil
}

func (d *gb18030Decoder) Clone() codecapi.RawDecoder {
	cp := make([]byte, len(d.pending))
	copy(cp, d.pending)
	return &gb18030Decoder{pending: cp}
}
