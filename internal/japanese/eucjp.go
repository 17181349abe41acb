// Package japanese implements EUC-JP, Shift_JIS/Windows-932 and
// ISO-2022-JP (spec §2 component E).
package japanese

import (
	"github.com/lifthrasiir/encoding/internal/dbcs"
	"github.com/lifthrasiir/encoding/internal/index"
)

const (
	eucjpLeadBase  = 0xA1
	eucjpTrailBase = 0xA1
	eucjpTrailSpan = 0xFE - eucjpTrailBase + 1
)

func eucjpIdx(lead, trail byte) int {
	return int(lead-eucjpLeadBase)*eucjpTrailSpan + int(trail-eucjpTrailBase)
}

// EUCJP is the JIS X 0208 plane of EUC-JP. The half-width-katakana
// (SS2) and JIS X 0212 (SS3) three-byte extensions are not
// implemented; see DESIGN.md.
var EUCJP = &dbcs.Codec{
	Table:     index.New(eucjpTable),
	IsLead:    func(b byte) bool { return b >= eucjpLeadBase && b <= 0xFE },
	LeadBase:  eucjpLeadBase,
	TrailBase: eucjpTrailBase,
	TrailSpan: eucjpTrailSpan,
}

var eucjpTable = map[int]rune{
	eucjpIdx(0xA4, 0xA2): 0x3042, // あ
	eucjpIdx(0xA4, 0xA4): 0x3044, // い
	eucjpIdx(0xA4, 0xA6): 0x3046, // う
	eucjpIdx(0xA5, 0xA2): 0x30A2, // ア
	eucjpIdx(0xB4, 0xC1): 0x6F22, // 漢
	eucjpIdx(0xBB, 0xFA): 0x5B57, // 字
}
