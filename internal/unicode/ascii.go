// Package unicode implements the ASCII, UTF-8 and UTF-16 codec state
// machines (spec §4.2 "selected state machines" and §2 component E).
package unicode

import "github.com/lifthrasiir/encoding/internal/codecapi"

// ASCIIEncoder encodes the 7-bit ASCII repertoire. It is stateless.
type ASCIIEncoder struct{}

func NewASCIIEncoder() *ASCIIEncoder { return &ASCIIEncoder{} }

func (e *ASCIIEncoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	for i, c := range input {
		if c > 0x7F {
			return i, codecapi.NewError(i, "unrepresentable character")
		}
		output.WriteByte(byte(c))
	}
	return len(input), nil
}

func (e *ASCIIEncoder) RawFinish(codecapi.ByteWriter) *codecapi.Error { return nil }

func (e *ASCIIEncoder) Clone() codecapi.RawEncoder { return NewASCIIEncoder() }

// ASCIIDecoder decodes 7-bit ASCII. Any byte >= 0x80 is invalid and
// the decoder advances exactly 1 byte past it (spec §4.2 advance
// table, "ASCII, single-byte").
type ASCIIDecoder struct{}

func NewASCIIDecoder() *ASCIIDecoder { return &ASCIIDecoder{} }

func (d *ASCIIDecoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	for i, b := range input {
		if b > 0x7F {
			return i, codecapi.NewError(i, "invalid sequence")
		}
		output.WriteRune(rune(b))
	}
	return len(input), nil
}

func (d *ASCIIDecoder) RawFinish(codecapi.StringWriter) *codecapi.Error { return nil }

func (d *ASCIIDecoder) Clone() codecapi.RawDecoder { return NewASCIIDecoder() }
