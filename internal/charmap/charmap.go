// Package charmap implements the single-byte codec family (spec §2
// component E, "single-byte family"): one parameterized state machine
// shared by every 256-entry table, per spec §9's design note that a
// shared-slice/table-driven implementation is preferable to one
// hand-written codec per table. State is empty, matching spec §3
// ("For stateless codecs... the state is empty").
package charmap

import (
	"github.com/lifthrasiir/encoding/internal/codecapi"
	"github.com/lifthrasiir/encoding/internal/index"
)

// Charmap is a single-byte encoding: bytes 0x00-0x7F are ASCII, bytes
// 0x80-0xFF are looked up in High, an index.Table over the domain
// 0..127 (byte value - 0x80).
type Charmap struct {
	Name string
	High *index.Table
}

// Encoder is the stateless single-byte encoder.
type Encoder struct{ cm *Charmap }

func (cm *Charmap) NewEncoder() *Encoder { return &Encoder{cm: cm} }

func (e *Encoder) RawFeed(input []rune, output codecapi.ByteWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	for i, c := range input {
		if c < 0x80 {
			output.WriteByte(byte(c))
			continue
		}
		idx, ok := e.cm.High.Backward(c)
		if !ok {
			return i, codecapi.NewError(i, "unrepresentable character")
		}
		output.WriteByte(byte(0x80 + idx))
	}
	return len(input), nil
}

func (e *Encoder) RawFinish(codecapi.ByteWriter) *codecapi.Error { return nil }

func (e *Encoder) Clone() codecapi.RawEncoder { return e.cm.NewEncoder() }

// Decoder is the stateless single-byte decoder.
type Decoder struct{ cm *Charmap }

func (cm *Charmap) NewDecoder() *Decoder { return &Decoder{cm: cm} }

func (d *Decoder) RawFeed(input []byte, output codecapi.StringWriter) (int, *codecapi.Error) {
	output.Reserve(len(input))
	for i, b := range input {
		if b < 0x80 {
			output.WriteRune(rune(b))
			continue
		}
		r, ok := d.cm.High.Forward(int(b - 0x80))
		if !ok {
			return i, codecapi.NewError(i, "invalid sequence")
		}
		output.WriteRune(r)
	}
	return len(input), nil
}

func (d *Decoder) RawFinish(codecapi.StringWriter) *codecapi.Error { return nil }

func (d *Decoder) Clone() codecapi.RawDecoder { return d.cm.NewDecoder() }
