package glyph

// UppercaseGlyphMap: 대문자 A~Z
var UppercaseGlyphMap = map[rune]Glyph{
	'A': {
		0b01110,
		0b10001,
		0b10001,
		0b10001,
		0b11111,
		0b10001,
		0b10001,
		0b00000,
	},
	'B': {
		0b11110,
		0b10001,
		0b10001,
		0b11110,
		0b10001,
		0b10001,
		0b11110,
		0b00000,
	},
	'C': {
		0b01110,
		0b10001,
		0b10000,
		0b10000,
		0b10000,
		0b10001,
		0b01110,
		0b00000,
	},
	'D': {
		0b11100,
		0b10010,
		0b10001,
		0b10001,
		0b10001,
		0b10010,
		0b11100,
		0b00000,
	},
	'E': {
		0b11111,
		0b10000,
		0b10000,
		0b11110,
		0b10000,
		0b10000,
		0b11111,
		0b00000,
	},
	'F': {
		0b11111,
		0b10000,
		0b10000,
		0b11110,
		0b10000,
		0b10000,
		0b10000,
		0b00000,
	},
	'G': {
		0b01110,
		0b10001,
		0b10000,
		0b10111,
		0b10001,
		0b10001,
		0b01110,
		0b00000,
	},
	'H': {
		0b10001,
		0b10001,
		0b10001,
		0b11111,
		0b10001,
		0b10001,
		0b10001,
		0b00000,
	},
	'I': {
		0b01110,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b01110,
		0b00000,
	},
	'J': {
		0b00001,
		0b00001,
		0b00001,
		0b00001,
		0b00001,
		0b10001,
		0b01110,
		0b00000,
	},
	'K': {
		0b10001,
		0b10010,
		0b10100,
		0b11000,
		0b10100,
		0b10010,
		0b10001,
		0b00000,
	},
	'L': {
		0b10000,
		0b10000,
		0b10000,
		0b10000,
		0b10000,
		0b10000,
		0b11111,
		0b00000,
	},
	'M': {
		0b10001,
		0b11011,
		0b10101,
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b00000,
	},
	'N': {
		0b10001,
		0b11001,
		0b10101,
		0b10011,
		0b10001,
		0b10001,
		0b10001,
		0b00000,
	},
	'O': {
		0b01110,
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b01110,
		0b00000,
	},
	'P': {
		0b11110,
		0b10001,
		0b10001,
		0b11110,
		0b10000,
		0b10000,
		0b10000,
		0b00000,
	},
	'Q': {
		0b01110,
		0b10001,
		0b10001,
		0b10001,
		0b10101,
		0b10010,
		0b01101,
		0b00000,
	},
	'R': {
		0b11110,
		0b10001,
		0b10001,
		0b11110,
		0b10100,
		0b10010,
		0b10001,
		0b00000,
	},
	'S': {
		0b01110,
		0b10001,
		0b10000,
		0b01110,
		0b00001,
		0b10001,
		0b01110,
		0b00000,
	},
	'T': {
		0b11111,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00000,
	},
	'U': {
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b01110,
		0b00000,
	},
	'V': {
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b01010,
		0b01010,
		0b00100,
		0b00000,
	},
	'W': {
		0b10001,
		0b10001,
		0b10001,
		0b10101,
		0b10101,
		0b11011,
		0b10001,
		0b00000,
	},
	'X': {
		0b10001,
		0b01010,
		0b00100,
		0b00100,
		0b00100,
		0b01010,
		0b10001,
		0b00000,
	},
	'Y': {
		0b10001,
		0b01010,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00000,
	},
	'Z': {
		0b11111,
		0b00001,
		0b00010,
		0b00100,
		0b01000,
		0b10000,
		0b11111,
		0b00000,
	},
}
