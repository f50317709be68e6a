package glyph

// SpecialGlyphMap: 특수문자 { } _ 공백
var SpecialGlyphMap = map[rune]Glyph{
	'{': {
		0b00110,
		0b01000,
		0b01000,
		0b10000,
		0b01000,
		0b01000,
		0b00110,
		0b00000,
	},
	'}': {
		0b01100,
		0b00010,
		0b00010,
		0b00001,
		0b00010,
		0b00010,
		0b01100,
		0b00000,
	},
	'_': {
		0b00000,
		0b00000,
		0b00000,
		0b00000,
		0b00000,
		0b00000,
		0b11111,
		0b00000,
	},
	// 공백은 전부 배경
	' ': {},
}
