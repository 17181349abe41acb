package charmap

import "github.com/lifthrasiir/encoding/internal/index"

// ISO88592 is ISO/IEC 8859-2 (Latin-2).
var ISO88592 = &Charmap{Name: "iso-8859-2", High: index.New(map[int]rune{
	0x20: 0x00A0, 0x21: 0x0104, 0x22: 0x02D8, 0x23: 0x0141, 0x24: 0x00A4,
	0x25: 0x013D, 0x26: 0x015A, 0x27: 0x00A7, 0x28: 0x00A8, 0x29: 0x0160,
	0x2A: 0x015E, 0x2B: 0x0164, 0x2C: 0x0179, 0x2D: 0x00AD, 0x2E: 0x017D,
	0x2F: 0x017B,
	0x30: 0x00B0, 0x31: 0x0105, 0x32: 0x02DB, 0x33: 0x0142, 0x34: 0x00B4,
	0x35: 0x013E, 0x36: 0x015B, 0x37: 0x02C7, 0x38: 0x00B8, 0x39: 0x0161,
	0x3A: 0x015F, 0x3B: 0x0165, 0x3C: 0x017A, 0x3D: 0x02DD, 0x3E: 0x017E,
	0x3F: 0x017C,
	0x40: 0x0154, 0x41: 0x00C1, 0x42: 0x00C2, 0x43: 0x0102, 0x44: 0x00C4,
	0x45: 0x0139, 0x46: 0x0106, 0x47: 0x00C7, 0x48: 0x010C, 0x49: 0x00C9,
	0x4A: 0x0118, 0x4B: 0x00CB, 0x4C: 0x011A, 0x4D: 0x00CD, 0x4E: 0x00CE,
	0x4F: 0x010E,
	0x50: 0x0110, 0x51: 0x0143, 0x52: 0x0147, 0x53: 0x00D3, 0x54: 0x00D4,
	0x55: 0x0150, 0x56: 0x00D6, 0x57: 0x00D7, 0x58: 0x0158, 0x59: 0x016E,
	0x5A: 0x00DA, 0x5B: 0x0170, 0x5C: 0x00DC, 0x5D: 0x00DD, 0x5E: 0x0162,
	0x5F: 0x00DF,
	0x60: 0x0155, 0x61: 0x00E1, 0x62: 0x00E2, 0x63: 0x0103, 0x64: 0x00E4,
	0x65: 0x013A, 0x66: 0x0107, 0x67: 0x00E7, 0x68: 0x010D, 0x69: 0x00E9,
	0x6A: 0x0119, 0x6B: 0x00EB, 0x6C: 0x011B, 0x6D: 0x00ED, 0x6E: 0x00EE,
	0x6F: 0x010F,
	0x70: 0x0111, 0x71: 0x0144, 0x72: 0x0148, 0x73: 0x00F3, 0x74: 0x00F4,
	0x75: 0x0151, 0x76: 0x00F6, 0x77: 0x00F7, 0x78: 0x0159, 0x79: 0x016F,
	0x7A: 0x00FA, 0x7B: 0x0171, 0x7C: 0x00FC, 0x7D: 0x00FD, 0x7E: 0x0163,
	0x7F: 0x02D9,
})}

// ISO88596 is ISO/IEC 8859-6 (Arabic). Unlike ISO-8859-2, nearly half
// of its 0xA0-0xFF range (45 of 96 bytes) is unassigned; those indices
// are simply absent.
var ISO88596 = &Charmap{Name: "iso-8859-6", High: index.New(map[int]rune{
	0x20: 0x00A0, 0x24: 0x00A4, 0x2C: 0x060C, 0x2D: 0x00AD,
	0x3B: 0x061B, 0x3F: 0x061F,
	0x41: 0x0621, 0x42: 0x0622, 0x43: 0x0623, 0x44: 0x0624, 0x45: 0x0625,
	0x46: 0x0626, 0x47: 0x0627, 0x48: 0x0628, 0x49: 0x0629, 0x4A: 0x062A,
	0x4B: 0x062B, 0x4C: 0x062C, 0x4D: 0x062D, 0x4E: 0x062E, 0x4F: 0x062F,
	0x50: 0x0630, 0x51: 0x0631, 0x52: 0x0632, 0x53: 0x0633, 0x54: 0x0634,
	0x55: 0x0635, 0x56: 0x0636, 0x57: 0x0637, 0x58: 0x0638, 0x59: 0x0639,
	0x5A: 0x063A,
	0x60: 0x0640, 0x61: 0x0641, 0x62: 0x0642, 0x63: 0x0643, 0x64: 0x0644,
	0x65: 0x0645, 0x66: 0x0646, 0x67: 0x0647, 0x68: 0x0648, 0x69: 0x0649,
	0x6A: 0x064A, 0x6B: 0x064B, 0x6C: 0x064C, 0x6D: 0x064D, 0x6E: 0x064E,
	0x6F: 0x064F,
	0x70: 0x0650, 0x71: 0x0651, 0x72: 0x0652,
})}

// Windows1252 is the common Western-European Windows code page: an
// ISO-8859-1-compatible 0xA0-0xFF range plus a non-identity mapping
// for 0x80-0x9F (with a handful of bytes left unassigned).
var Windows1252 = &Charmap{Name: "windows-1252", High: buildWindows1252()}

func buildWindows1252() *index.Table {
	m := map[int]rune{
		0x00: 0x20AC, 0x02: 0x201A, 0x03: 0x0192, 0x04: 0x201E, 0x05: 0x2026,
		0x06: 0x2020, 0x07: 0x2021, 0x08: 0x02C6, 0x09: 0x2030, 0x0A: 0x0160,
		0x0B: 0x2039, 0x0C: 0x0152, 0x0E: 0x017D,
		0x11: 0x2018, 0x12: 0x2019, 0x13: 0x201C, 0x14: 0x201D, 0x15: 0x2022,
		0x16: 0x2013, 0x17: 0x2014, 0x18: 0x02DC, 0x19: 0x2122, 0x1A: 0x0161,
		0x1B: 0x203A, 0x1C: 0x0153, 0x1E: 0x017E, 0x1F: 0x0178,
	}
	for b := 0xA0; b <= 0xFF; b++ {
		m[b-0x80] = rune(b)
	}
	return index.New(m)
}
