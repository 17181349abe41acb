package japanese

import (
	"github.com/lifthrasiir/encoding/internal/dbcs"
	"github.com/lifthrasiir/encoding/internal/index"
)

const (
	sjisTrailBase = 0x40
	sjisTrailSpan = 0xFC - sjisTrailBase + 1
)

// sjisIsLead covers both Shift_JIS lead ranges, 0x81-0x9F and
// 0xE0-0xFC, folded into one contiguous index space by sjisRow.
func sjisIsLead(b byte) bool {
	return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
}

// sjisRow maps a lead byte to its row number in the folded index
// space: rows 0..0x1E for 0x81-0x9F, rows 0x1F.. for 0xE0-0xFC.
func sjisRow(lead byte) byte {
	if lead <= 0x9F {
		return lead - 0x81
	}
	return lead - 0xE0 + 0x1F
}

func sjisUnrow(row byte) byte {
	if row <= 0x1E {
		return row + 0x81
	}
	return row - 0x1F + 0xE0
}

func sjisIdx(lead, trail byte) int {
	return int(sjisRow(lead))*sjisTrailSpan + int(trail-sjisTrailBase)
}

func sjisSingleHigh(b byte) (rune, bool) {
	if b >= 0xA1 && b <= 0xDF {
		return rune(0xFF61 + int(b-0xA1)), true
	}
	return 0, false
}

func sjisEncodeLow(r rune) (byte, bool) {
	if r >= 0xFF61 && r <= 0xFF9F {
		return byte(0xA1 + (r - 0xFF61)), true
	}
	return 0, false
}

// Windows932 is the Windows-932 (Shift_JIS) codec: JIS X 0208 mapped
// through the Shift_JIS row/cell scheme, plus single-byte half-width
// katakana (spec §4.2, "Shift_JIS also maps single-byte 0xA1..0xDF to
// half-width katakana directly").
var Windows932 = &dbcs.Codec{
	Table:      index.New(windows932Table),
	IsLead:     sjisIsLead,
	TrailBase:  sjisTrailBase,
	TrailSpan:  sjisTrailSpan,
	SingleHigh: sjisSingleHigh,
	EncodeLow:  sjisEncodeLow,
	RowOf:      sjisRow,
	LeadOf:     sjisUnrow,
}

var windows932Table = buildWindows932Table()

func buildWindows932Table() map[int]rune {
	m := map[int]rune{
		sjisIdx(0x82, 0xA0): 0x3042, // あ
		sjisIdx(0x82, 0xA2): 0x3044, // い
		sjisIdx(0x83, 0x41): 0x30A2, // ア
		sjisIdx(0x8A, 0xBF): 0x6F22, // 漢
		sjisIdx(0x8E, 0x9A): 0x5B57, // 字
		sjisIdx(0xEA, 0xA4): 0x7E8A, // 纊 (JIS X 0208 row-89 extension range)
	}
	return m
}
