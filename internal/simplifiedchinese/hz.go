package simplifiedchinese

import "github.com/lifthrasiir/encoding/internal/codecapi"

// hzCodec implements HZ-GB2312 (spec §4.2): a 7-bit-safe encoding that
// toggles between ASCII and GB2312 two-byte mode with the "~{" / "~}"
// escape pair, and escapes a literal tilde as "~~".
type hzCodec struct{}

var HZ = &hzCodec{}

type hzEncoder struct{ inGB bool }

func (c *hzCodec) NewEncoder() codecapi.RawEncoder { return &hzEncoder{} }

func (e *hzEncoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	for i, r := range input {
		if r == '~' {
			if e.inGB {
				output.WriteBytes([]byte{'~', '}'})
				e.inGB = false
			}
			output.WriteBytes([]byte{'~', '~'})
			continue
		}
		if r < 0x80 {
			if e.inGB {
				output.WriteBytes([]byte{'~', '}'})
				e.inGB = false
			}
			output.WriteByte(byte(r))
			continue
		}
		idx, ok := gbkTable2(r)
		if !ok {
			return i, codecapi.NewError(i, "unrepresentable character")
		}
		lead, trail := gbkDecompose(idx)
		if lead < 0xA1 || lead > 0xFE || trail < 0xA1 || trail > 0xFE {
			return i, codecapi.NewError(i, "unrepresentable character")
		}
		if !e.inGB {
			output.WriteBytes([]byte{'~', '{'})
			e.inGB = true
		}
		output.WriteByte(lead - 0x80)
		output.WriteByte(trail - 0x80)
	}
	return len(input), nil
}

func (e *hzEncoder) RawFinish(output codecapi.ByteWriter) *codecapi.Error {
	if e.inGB {
		output.WriteBytes([]byte{'~', '}'})
		e.inGB = false
	}
	return nil
}

func (e *hzEncoder) Clone() codecapi.RawEncoder { return &hzEncoder{} }

type hzDecoder struct {
	inGB    bool
	pending []byte // a single byte: a '~' escape prefix or a GB lead byte
}

func (c *hzCodec) NewDecoder() codecapi.RawDecoder { return &hzDecoder{} }

func (d *hzDecoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	i := 0
	for i < len(input) {
		b := input[i]

		if len(d.pending) == 1 && d.pending[0] == '~' {
			d.pending = nil
			i++
			switch b {
			case '~':
				output.WriteRune('~')
			case '{':
				d.inGB = true
			case '}':
				d.inGB = false
			default:
				return i - 2, codecapi.NewErrorLen(i-2, "invalid escape sequence", 2)
			}
			continue
		}

		if b == '~' {
			d.pending = []byte{'~'}
			i++
			continue
		}

		if !d.inGB {
			if b >= 0x80 {
				return i, codecapi.NewError(i, "invalid sequence")
			}
			output.WriteRune(rune(b))
			i++
			continue
		}

		// GB two-byte mode: bytes are 0x21-0x7E, offset +0x80 from GBK.
		if len(d.pending) == 1 {
			lead := d.pending[0] + 0x80
			d.pending = nil
			if b < 0x21 || b > 0x7E {
				return i - 1, codecapi.NewErrorLen(i-1, "invalid sequence", 2)
			}
			trail := b + 0x80
			idx := gbkIdx(lead, trail)
			r, ok := GBK.Table.Forward(idx)
			if !ok {
				return i - 1, codecapi.NewErrorLen(i-1, "invalid sequence", 2)
			}
			output.WriteRune(r)
			i++
			continue
		}
		if b < 0x21 || b > 0x7E {
			return i, codecapi.NewError(i, "invalid sequence")
		}
		d.pending = []byte{b}
		i++
	}
	return i, nil
}

func (d *hzDecoder) RawFinish(codecapi.StringWriter) *codecapi.Error {
	if len(d.pending) > 0 {
		d.pending = nil
		return codecapi.NewErrorLen(0, "incomplete sequence", 1)
	}
	return nil
}

func (d *hzDecoder) Clone() codecapi.RawDecoder {
	cp := make([]byte, len(d.pending))
	copy(cp, d.pending)
	return &hzDecoder{inGB: d.inGB, pending: cp}
}
