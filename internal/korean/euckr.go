// Package korean implements EUC-KR and its Windows-949 (UHC)
// superset (spec §2 component E).
package korean

import (
	"github.com/lifthrasiir/encoding/internal/dbcs"
	"github.com/lifthrasiir/encoding/internal/index"
)

const (
	leadBase  = 0x81
	trailBase = 0x41
	trailSpan = 0xFE - trailBase + 1
)

func isLead(b byte) bool { return b >= 0x81 && b <= 0xFE }

// Windows949 is the Windows-949 (UHC) codec: EUC-KR plus its Microsoft
// code-page extension. The table below is a representative
// cross-section (spec §1: full table generation is out of scope),
// including the exact entries spec §8 scenario 5 exercises.
var Windows949 = &dbcs.Codec{
	Table:     index.New(windows949Table),
	IsLead:    isLead,
	LeadBase:  leadBase,
	TrailBase: trailBase,
	TrailSpan: trailSpan,
}

func idx(lead, trail byte) int {
	return int(lead-leadBase)*trailSpan + int(trail-trailBase)
}

var windows949Table = map[int]rune{
	idx(0xB0, 0xA1): 0xAC00, // 가
	idx(0xB0, 0xA2): 0xAC01, // 각
	idx(0xB1, 0xB8): 0xAC19, // 같
	idx(0xBE, 0xD3): 0xC559, // 읙
	idx(0xBF, 0xCD): 0x6C40, // 汀 (CJK ideograph, Windows-949 UHC range)
	idx(0xBF, 0xEC): 0x6C70, // 汰 (CJK ideograph, Windows-949 UHC range)
	idx(0xC7, 0xD1): 0xD55C, // 한
	idx(0xB9, 0xB9): 0xAE00, // 글
}
