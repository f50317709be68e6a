package glyph

// LowercaseGlyphMap: 소문자 a~z
var LowercaseGlyphMap = map[rune]Glyph{
	'a': {
		0b00000,
		0b00000,
		0b01110,
		0b00001,
		0b01111,
		0b10001,
		0b01111,
		0b00000,
	},
	'b': {
		0b10000,
		0b10000,
		0b11110,
		0b10001,
		0b10001,
		0b10001,
		0b11110,
		0b00000,
	},
	'c': {
		0b00000,
		0b00000,
		0b01110,
		0b10001,
		0b10000,
		0b10001,
		0b01110,
		0b00000,
	},
	'd': {
		0b00001,
		0b00001,
		0b01111,
		0b10001,
		0b10001,
		0b10001,
		0b01111,
		0b00000,
	},
	'e': {
		0b00000,
		0b00000,
		0b01110,
		0b10001,
		0b11111,
		0b10000,
		0b01110,
		0b00000,
	},
	'f': {
		0b00110,
		0b01001,
		0b01000,
		0b11100,
		0b01000,
		0b01000,
		0b01000,
		0b00000,
	},
	'g': {
		0b00000,
		0b00000,
		0b01111,
		0b10001,
		0b10001,
		0b01111,
		0b00001,
		0b01110,
	},
	'h': {
		0b10000,
		0b10000,
		0b11110,
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b00000,
	},
	'i': {
		0b00100,
		0b00000,
		0b01100,
		0b00100,
		0b00100,
		0b00100,
		0b01110,
		0b00000,
	},
	'j': {
		0b00010,
		0b00000,
		0b00110,
		0b00010,
		0b00010,
		0b00010,
		0b10010,
		0b01100,
	},
	'k': {
		0b10000,
		0b10000,
		0b10010,
		0b10100,
		0b11000,
		0b10100,
		0b10010,
		0b00000,
	},
	'l': {
		0b01100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b01110,
		0b00000,
	},
	'm': {
		0b00000,
		0b00000,
		0b11010,
		0b10101,
		0b10101,
		0b10101,
		0b10101,
		0b00000,
	},
	'n': {
		0b00000,
		0b00000,
		0b11110,
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b00000,
	},
	'o': {
		0b00000,
		0b00000,
		0b01110,
		0b10001,
		0b10001,
		0b10001,
		0b01110,
		0b00000,
	},
	'p': {
		0b00000,
		0b00000,
		0b11110,
		0b10001,
		0b10001,
		0b11110,
		0b10000,
		0b10000,
	},
	'q': {
		0b00000,
		0b00000,
		0b01111,
		0b10001,
		0b10001,
		0b01111,
		0b00001,
		0b00001,
	},
	'r': {
		0b00000,
		0b00000,
		0b10110,
		0b11001,
		0b10000,
		0b10000,
		0b10000,
		0b00000,
	},
	's': {
		0b00000,
		0b00000,
		0b01110,
		0b10000,
		0b01110,
		0b00001,
		0b11110,
		0b00000,
	},
	't': {
		0b01000,
		0b01000,
		0b11100,
		0b01000,
		0b01000,
		0b01001,
		0b00110,
		0b00000,
	},
	'u': {
		0b00000,
		0b00000,
		0b10001,
		0b10001,
		0b10001,
		0b10001,
		0b01111,
		0b00000,
	},
	'v': {
		0b00000,
		0b00000,
		0b10001,
		0b10001,
		0b01010,
		0b01010,
		0b00100,
		0b00000,
	},
	'w': {
		0b00000,
		0b00000,
		0b10001,
		0b10101,
		0b10101,
		0b10101,
		0b01010,
		0b00000,
	},
	'x': {
		0b00000,
		0b00000,
		0b10001,
		0b01010,
		0b00100,
		0b01010,
		0b10001,
		0b00000,
	},
	'y': {
		0b00000,
		0b00000,
		0b10001,
		0b10001,
		0b10001,
		0b01111,
		0b00001,
		0b01110,
	},
	'z': {
		0b00000,
		0b00000,
		0b11111,
		0b00010,
		0b00100,
		0b01000,
		0b11111,
		0b00000,
	},
}
