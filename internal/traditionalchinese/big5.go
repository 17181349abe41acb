// Package traditionalchinese implements Big5 and its HKSCS extension
// (spec §2 component E).
package traditionalchinese

import (
	"github.com/lifthrasiir/encoding/internal/codecapi"
	"github.com/lifthrasiir/encoding/internal/index"
)

const (
	big5LeadBase  = 0x81
	big5TrailLow  = 0x40
	big5TrailHigh = 0xFE
	big5TrailSpan = big5TrailHigh - big5TrailLow + 1
)

func big5IsLead(b byte) bool { return b >= big5LeadBase && b <= 0xFE }

func big5Idx(lead, trail byte) int {
	return int(lead-big5LeadBase)*big5TrailSpan + int(trail-big5TrailLow)
}

func big5Decompose(idx int) (byte, byte) {
	lead := byte(idx/big5TrailSpan) + big5LeadBase
	trail := byte(idx%big5TrailSpan) + big5TrailLow
	return lead, trail
}

// Big5Table maps each two-byte pointer to either one codepoint, or —
// for a handful of HKSCS characters with no precomposed Unicode
// codepoint — an ordered pair intended to be emitted as two runes
// (spec's index.Table "ForwardPair", component C).
var Big5Table = index.New(big5Table).WithPairs(big5PairTable)

var big5Table = map[int]rune{
	big5Idx(0xA4, 0x40): 0x4E00, // 一
	big5Idx(0xA4, 0x41): 0x4E01, // 丁
	big5Idx(0xA4, 0x5D): 0x4E2D, // 中
	big5Idx(0xA6, 0x6E): 0x6587, // 文
	big5Idx(0xBD, 0x7C): 0x81FA, // 台
	big5Idx(0xC6, 0xCA): 0x7063, // 灣
}

// big5PairTable covers HKSCS pointers whose canonical Unicode
// representation is a combining-character sequence rather than a
// single precomposed codepoint.
var big5PairTable = map[int][2]rune{
	big5Idx(0x88, 0x62): {0x00CA, 0x0304}, // Ê + macron
	big5Idx(0x88, 0x64): {0x00CA, 0x030C}, // Ê + caron
}

// Big5 is the Big5/HKSCS codec.
var Big5 = &big5Codec{}

type big5Codec struct{}

func (c *big5Codec) NewEncoder() codecapi.RawEncoder { return &big5Encoder{} }
func (c *big5Codec) NewDecoder() codecapi.RawDecoder { return &big5Decoder{} }

type big5Encoder struct{}

func (e *big5Encoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	for i, r := range input {
		if r < 0x80 {
			output.WriteByte(byte(r))
			continue
		}
		idx, ok := Big5Table.Backward(r)
		if !ok {
			return i, codecapi.NewError(i, "unrepresentable character")
		}
		lead, trail := big5Decompose(idx)
		output.WriteByte(lead)
		output.WriteByte(trail)
	}
	return len(input), nil
}

func (e *big5Encoder) RawFinish(codecapi.ByteWriter) *codecapi.Error { return nil }
func (e *big5Encoder) Clone() codecapi.RawEncoder                    { return &big5Encoder{} }

type big5Decoder struct {
	lead byte
	has  bool
}

func (d *big5Decoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	i := 0
	for i < len(input) {
		b := input[i]
		if !d.has {
			if b < 0x80 {
				output.WriteRune(rune(b))
				i++
				continue
			}
			if !big5IsLead(b) {
				return i, codecapi.NewError(i, "invalid sequence")
			}
			d.lead = b
			d.has = true
			i++
			continue
		}

		trail := b
		d.has = false
		if trail < big5TrailLow || trail > big5TrailHigh {
			start := i - 1
			return start, codecapi.NewErrorLen(start, "invalid sequence", 2)
		}
		idx := big5Idx(d.lead, trail)
		if pair, ok := Big5Table.ForwardPair(idx); ok {
			output.WriteRune(pair[0])
			output.WriteRune(pair[1])
			i++
			continue
		}
		r, ok := Big5Table.Forward(idx)
		if !ok {
			start := i - 1
			return start, codecapi.NewErrorLen(start, "invalid sequence", 2)
		}
		output.WriteRune(r)
		i++
	}
	return i, nil
}

func (d *big5Decoder) RawFinish(codecapi.StringWriter) *codecapi.Error {
	if d.has {
		d.has = false
		return codecapi.NewErrorLen(0, "incomplete sequence", 1)
	}
	return nil
}

func (d *big5Decoder) Clone() codecapi.RawDecoder { return &big5Decoder{lead: d.lead, has: d.has} }
