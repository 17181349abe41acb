package japanese

import (
	"github.com/lifthrasiir/encoding/internal/codecapi"
	"github.com/lifthrasiir/encoding/internal/index"
)

// iso2022jpMode is the designated character set, switched by escape
// sequences (spec §4.2 "ISO-2022-JP").
type iso2022jpMode int

const (
	modeASCII iso2022jpMode = iota
	modeRoman
	modeKatakana
	modeKanji0208
	modeKanji0212 // decoder only, see DESIGN.md
)

var (
	escASCII    = []byte{0x1B, '(', 'B'}
	escRoman    = []byte{0x1B, '(', 'J'}
	escKatakana = []byte{0x1B, '(', 'I'}
	escKanji78  = []byte{0x1B, '$', '@'}
	escKanji83  = []byte{0x1B, '$', 'B'}
	escKanji212 = []byte{0x1B, '$', '(', 'D'}
)

// ISO2022JPTable is the JIS X 0208 row/cell plane shared by the
// two-byte kanji mode; rows run 0x21-0x7E in each byte, unlike the
// EUC-JP/Shift_JIS high-bit variants.
var ISO2022JPTable = index.New(iso2022jpTable)

const iso2022jpTrailBase = 0x21
const iso2022jpTrailSpan = 0x7E - iso2022jpTrailBase + 1

func iso2022jpIdx(lead, trail byte) int {
	return int(lead-iso2022jpTrailBase)*iso2022jpTrailSpan + int(trail-iso2022jpTrailBase)
}

var iso2022jpTable = map[int]rune{
	iso2022jpIdx(0x24, 0x22): 0x3042, // あ
	iso2022jpIdx(0x24, 0x24): 0x3044, // い
	iso2022jpIdx(0x25, 0x22): 0x30A2, // ア
	iso2022jpIdx(0x34, 0x41): 0x6F22, // 漢
	iso2022jpIdx(0x3B, 0x5A): 0x5B57, // 字
}

// ISO2022JP is the ISO-2022-JP codec. Unlike EUC-JP and Shift_JIS it
// is not an instance of dbcs.Codec: its state is the designated mode,
// not a pending lead byte, and bytes switch mode via multi-byte escape
// sequences rather than a high bit.
type ISO2022JPCodec struct{}

var ISO2022JP = &ISO2022JPCodec{}

type iso2022jpEncoder struct{ mode iso2022jpMode }

func (c *ISO2022JPCodec) NewEncoder() codecapi.RawEncoder { return &iso2022jpEncoder{} }

func (e *iso2022jpEncoder) switchTo(mode iso2022jpMode, output codecapi.ByteWriter) {
	if e.mode == mode {
		return
	}
	switch mode {
	case modeASCII:
		output.WriteBytes(escASCII)
	case modeKatakana:
		output.WriteBytes(escKatakana)
	case modeKanji0208:
		output.WriteBytes(escKanji83)
	}
	e.mode = mode
}

func (e *iso2022jpEncoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	for i, r := range input {
		if r == 0x1B {
			return i, codecapi.NewError(i, "unrepresentable character")
		}
		if r < 0x80 {
			e.switchTo(modeASCII, output)
			output.WriteByte(byte(r))
			continue
		}
		if r >= 0xFF61 && r <= 0xFF9F {
			e.switchTo(modeKatakana, output)
			output.WriteByte(byte(0x21 + (r - 0xFF61)))
			continue
		}
		idx, ok := ISO2022JPTable.Backward(r)
		if !ok {
			return i, codecapi.NewError(i, "unrepresentable character")
		}
		e.switchTo(modeKanji0208, output)
		lead := byte(idx/iso2022jpTrailSpan) + iso2022jpTrailBase
		trail := byte(idx%iso2022jpTrailSpan) + iso2022jpTrailBase
		output.WriteByte(lead)
		output.WriteByte(trail)
	}
	return len(input), nil
}

func (e *iso2022jpEncoder) RawFinish(output codecapi.ByteWriter) *codecapi.Error {
	e.switchTo(modeASCII, output)
	return nil
}

func (e *iso2022jpEncoder) Clone() codecapi.RawEncoder {
	return &iso2022jpEncoder{}
}

// iso2022jpDecoder's pending holds bytes of an escape sequence or a
// kanji lead byte not yet resolved; it may span a RawFeed call
// boundary like any other codec state (spec §3).
type iso2022jpDecoder struct {
	mode    iso2022jpMode
	pending []byte
}

func (c *ISO2022JPCodec) NewDecoder() codecapi.RawDecoder { return &iso2022jpDecoder{} }

func matchEsc(buf []byte, esc []byte) (full bool, partial bool) {
	n := len(buf)
	if n > len(esc) {
		return false, false
	}
	for i := 0; i < n; i++ {
		if buf[i] != esc[i] {
			return false, false
		}
	}
	return n == len(esc), true
}

var allEscapes = [][]byte{escASCII, escRoman, escKatakana, escKanji78, escKanji83, escKanji212}

func escModeFor(esc []byte) iso2022jpMode {
	switch string(esc) {
	case string(escASCII):
		return modeASCII
	case string(escRoman):
		return modeRoman
	case string(escKatakana):
		return modeKatakana
	case string(escKanji78), string(escKanji83):
		return modeKanji0208
	case string(escKanji212):
		return modeKanji0212
	}
	return modeASCII
}

func (d *iso2022jpDecoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	i := 0
	for i < len(input) {
		b := input[i]

		if len(d.pending) > 0 && d.pending[0] == 0x1B {
			d.pending = append(d.pending, b)
			i++
			anyPartial := false
			for _, esc := range allEscapes {
				full, partial := matchEsc(d.pending, esc)
				if full {
					d.mode = escModeFor(esc)
					d.pending = nil
					anyPartial = true
					break
				}
				if partial {
					anyPartial = true
				}
			}
			if anyPartial {
				continue
			}
			start := i - len(d.pending)
			length := len(d.pending)
			d.pending = nil
			return start, codecapi.NewErrorLen(start, "invalid escape sequence", length)
		}

		if b == 0x1B {
			d.pending = []byte{b}
			i++
			continue
		}

		switch d.mode {
		case modeASCII:
			if b >= 0x80 {
				return i, codecapi.NewError(i, "invalid sequence")
			}
			output.WriteRune(rune(b))
			i++
		case modeRoman:
			if b >= 0x80 {
				return i, codecapi.NewError(i, "invalid sequence")
			}
			r := rune(b)
			switch b {
			case 0x5C:
				r = 0x00A5
			case 0x7E:
				r = 0x203E
			}
			output.WriteRune(r)
			i++
		case modeKatakana:
			if b < 0x21 || b > 0x5F {
				return i, codecapi.NewError(i, "invalid sequence")
			}
			output.WriteRune(rune(0xFF61 + int(b-0x21)))
			i++
		case modeKanji0208, modeKanji0212:
			if len(d.pending) == 1 {
				lead := d.pending[0]
				d.pending = nil
				idx := iso2022jpIdx(lead, b)
				r, ok := ISO2022JPTable.Forward(idx)
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
	}
	return i, nil
}

func (d *iso2022jpDecoder) RawFinish(codecapi.StringWriter) *codecapi.Error {
	if len(d.pending) > 0 {
		d.pending = nil
		return codecapi.NewErrorLen(0, "incomplete sequence", 1)
	}
	return nil
}

func (d *iso2022jpDecoder) Clone() codecapi.RawDecoder {
	cp := make([]byte, len(d.pending))
	copy(cp, d.pending)
	return &iso2022jpDecoder{mode: d.mode, pending: cp}
}
