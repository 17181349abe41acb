package encoding

// labelToName is the WHATWG Encoding Standard's "label to encoding"
// table (https://encoding.spec.whatwg.org/#names-and-labels),
// restricted to the encodings this package implements.
var labelToName = map[string]string{
	"unicode-1-1-utf-8": "utf-8",
	"utf-8":             "utf-8",
	"utf8":              "utf-8",

	"unicode-1-1-ucs-2": "utf-16le",
	"unicode20utf-16":   "utf-16le",
	"utf-16":            "utf-16le",
	"utf-16le":          "utf-16le",
	"utf-16be":          "utf-16be",

	"ascii":      "ascii",
	"us-ascii":   "ascii",
	"iso-ir-6":   "ascii",
	"iso646-us":  "ascii",

	"l1":         "windows-1252",
	"latin1":     "windows-1252",
	"cp1252":     "windows-1252",
	"windows-1252": "windows-1252",
	"x-cp1252":   "windows-1252",

	"csisolatin2": "iso-8859-2",
	"iso-8859-2":  "iso-8859-2",
	"iso-ir-101":  "iso-8859-2",
	"iso8859-2":   "iso-8859-2",
	"iso88592":    "iso-8859-2",
	"iso_8859-2":  "iso-8859-2",
	"l2":          "iso-8859-2",
	"latin2":      "iso-8859-2",

	"arabic":       "iso-8859-6",
	"asmo-708":     "iso-8859-6",
	"csiso88596e":  "iso-8859-6",
	"csiso88596i":  "iso-8859-6",
	"csisolatinarabic": "iso-8859-6",
	"ecma-114":     "iso-8859-6",
	"iso-8859-6":   "iso-8859-6",
	"iso-8859-6-e": "iso-8859-6",
	"iso-8859-6-i": "iso-8859-6",
	"iso-ir-127":   "iso-8859-6",
	"iso8859-6":    "iso-8859-6",
	"iso88596":     "iso-8859-6",
	"iso_8859-6":   "iso-8859-6",

	"cseuckr":          "euc-kr",
	"csksc56011987":    "euc-kr",
	"euc-kr":           "euc-kr",
	"iso-ir-149":       "euc-kr",
	"korean":           "euc-kr",
	"ks_c_5601-1987":   "euc-kr",
	"ks_c_5601-1989":   "euc-kr",
	"ksc5601":          "euc-kr",
	"ksc_5601":         "euc-kr",
	"windows-949":      "euc-kr",

	"cseucpkdfmtjapanese": "euc-jp",
	"euc-jp":              "euc-jp",
	"x-euc-jp":            "euc-jp",

	"csshiftjis": "shift_jis",
	"ms932":      "shift_jis",
	"ms_kanji":   "shift_jis",
	"shift-jis":  "shift_jis",
	"shift_jis":  "shift_jis",
	"sjis":       "shift_jis",
	"windows-31j": "shift_jis",
	"x-sjis":     "shift_jis",

	"csiso2022jp": "iso-2022-jp",
	"iso-2022-jp": "iso-2022-jp",

	"chinese":     "gbk",
	"csgb2312":    "gbk",
	"csiso58gb231280": "gbk",
	"gb2312":      "gbk",
	"gb_2312":     "gbk",
	"gb_2312-80":  "gbk",
	"gbk":         "gbk",
	"iso-ir-58":   "gbk",
	"x-gbk":       "gbk",

	"gb18030": "gb18030",

	"hz-gb-2312": "hz-gb2312",
	"hz-gb2312":  "hz-gb2312",

	"big5":       "big5",
	"big5-hkscs": "big5",
	"cn-big5":    "big5",
	"csbig5":     "big5",
	"x-x-big5":   "big5",
}
