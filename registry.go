package encoding

import (
	"github.com/lifthrasiir/encoding/internal/charmap"
	"github.com/lifthrasiir/encoding/internal/dbcs"
	"github.com/lifthrasiir/encoding/internal/japanese"
	"github.com/lifthrasiir/encoding/internal/korean"
	"github.com/lifthrasiir/encoding/internal/simplifiedchinese"
	"github.com/lifthrasiir/encoding/internal/traditionalchinese"
	"github.com/lifthrasiir/encoding/internal/unicode"
)

// registry is the process-wide, immutable-after-init map from
// canonical encoding name to Codec (spec component I, "registry").
// It is built once from init() and never mutated afterwards, so
// Lookup needs no locking.
var registry = map[string]*Codec{}

func register(c *Codec) { registry[c.Name] = c }

func dbcsCodec(name string, c *dbcs.Codec) *Codec {
	return &Codec{
		Name:       name,
		NewEncoder: func() RawEncoder { return c.NewEncoder() },
		NewDecoder: func() RawDecoder { return c.NewDecoder() },
	}
}

func init() {
	register(&Codec{
		Name:       "ascii",
		NewEncoder: func() RawEncoder { return unicode.NewASCIIEncoder() },
		NewDecoder: func() RawDecoder { return unicode.NewASCIIDecoder() },
	})
	register(&Codec{
		Name:       "utf-8",
		NewEncoder: func() RawEncoder { return unicode.NewUTF8Encoder() },
		NewDecoder: func() RawDecoder { return unicode.NewUTF8Decoder() },
	})
	register(&Codec{
		Name:       "utf-16le",
		NewEncoder: func() RawEncoder { return unicode.NewUTF16LEEncoder() },
		NewDecoder: func() RawDecoder { return unicode.NewUTF16LEDecoder() },
	})
	register(&Codec{
		Name:       "utf-16be",
		NewEncoder: func() RawEncoder { return unicode.NewUTF16BEEncoder() },
		NewDecoder: func() RawDecoder { return unicode.NewUTF16BEDecoder() },
	})

	register(&Codec{
		Name:       "windows-1252",
		NewEncoder: func() RawEncoder { return charmap.Windows1252.NewEncoder() },
		NewDecoder: func() RawDecoder { return charmap.Windows1252.NewDecoder() },
	})
	register(&Codec{
		Name:       "iso-8859-2",
		NewEncoder: func() RawEncoder { return charmap.ISO88592.NewEncoder() },
		NewDecoder: func() RawDecoder { return charmap.ISO88592.NewDecoder() },
	})
	register(&Codec{
		Name:       "iso-8859-6",
		NewEncoder: func() RawEncoder { return charmap.ISO88596.NewEncoder() },
		NewDecoder: func() RawDecoder { return charmap.ISO88596.NewDecoder() },
	})

	register(dbcsCodec("euc-kr", korean.Windows949))
	register(dbcsCodec("euc-jp", japanese.EUCJP))
	register(dbcsCodec("shift_jis", japanese.Windows932))
	register(&Codec{
		Name:       "iso-2022-jp",
		NewEncoder: func() RawEncoder { return japanese.ISO2022JP.NewEncoder() },
		NewDecoder: func() RawDecoder { return japanese.ISO2022JP.NewDecoder() },
	})

	register(dbcsCodec("gbk", simplifiedchinese.GBK))
	register(&Codec{
		Name:       "gb18030",
		NewEncoder: func() RawEncoder { return simplifiedchinese.GB18030.NewEncoder() },
		NewDecoder: func() RawDecoder { return simplifiedchinese.GB18030.NewDecoder() },
	})
	register(&Codec{
		Name:       "hz-gb2312",
		NewEncoder: func() RawEncoder { return simplifiedchinese.HZ.NewEncoder() },
		NewDecoder: func() RawDecoder { return simplifiedchinese.HZ.NewDecoder() },
	})

	register(&Codec{
		Name:       "big5",
		NewEncoder: func() RawEncoder { return traditionalchinese.Big5.NewEncoder() },
		NewDecoder: func() RawDecoder { return traditionalchinese.Big5.NewDecoder() },
	})
}

// Lookup resolves label (any WHATWG-recognized spelling, case- and
// whitespace-insensitive) to its Codec. ok is false if label names no
// known encoding.
func Lookup(label string) (c *Codec, ok bool) {
	name := NormalizeLabel(label)
	if name == "" {
		return nil, false
	}
	c, ok = registry[name]
	return
}

// Names returns every canonical encoding name this package registers,
// in no particular order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
