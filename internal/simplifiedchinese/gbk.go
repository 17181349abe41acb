// Package simplifiedchinese implements GBK, GB18030 and HZ-GB2312
// (spec §2 component E).
package simplifiedchinese

import (
	"github.com/lifthrasiir/encoding/internal/dbcs"
	"github.com/lifthrasiir/encoding/internal/index"
)

const (
	gbkLeadBase  = 0x81
	gbkTrailBase = 0x40
	gbkTrailSpan = 0xFE - gbkTrailBase + 1
)

func gbkIsLead(b byte) bool { return b >= gbkLeadBase && b <= 0xFE }

func gbkIdx(lead, trail byte) int {
	return int(lead-gbkLeadBase)*gbkTrailSpan + int(trail-gbkTrailBase)
}

// GBK is the GBK codec: the two-byte extension of GB2312 used as the
// non-GB18030 legacy Windows-936 code page.
var GBK = &dbcs.Codec{
	Table:     index.New(gbkTable),
	IsLead:    gbkIsLead,
	LeadBase:  gbkLeadBase,
	TrailBase: gbkTrailBase,
	TrailSpan: gbkTrailSpan,
}

var gbkTable = map[int]rune{
	gbkIdx(0xB0, 0xA1): 0x554A, // 啊
	gbkIdx(0xB0, 0xA2): 0x963F, // 阿
	gbkIdx(0xC4, 0xE3): 0x4F60, // 你
	gbkIdx(0xBA, 0xC3): 0x597D, // 好
	gbkIdx(0xCA, 0xC0): 0x4E16, // 世
	gbkIdx(0xBD, 0xE7): 0x754C, // 界
}
