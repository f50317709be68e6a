package glyph

// Row: 글리프 한 줄. 하위 GlyphWidth비트만 사용 (최상위 사용 비트 = 가장 왼쪽 픽셀)
type Row byte

const (
	GlyphWidth  = 5
	GlyphHeight = 8
)

// Glyph: 5x8 비트맵. 제로값은 빈 글리프
type Glyph [GlyphHeight]Row

// 최종 글리프 맵
var GlyphMap = map[rune]Glyph{}

// ✅ `init()` 함수: 모든 글리프를 `GlyphMap`에 추가
func init() {
	for char, glyph := range UppercaseGlyphMap {
		GlyphMap[char] = glyph
	}
	for char, glyph := range LowercaseGlyphMap {
		GlyphMap[char] = glyph
	}
	for char, glyph := range SpecialGlyphMap {
		GlyphMap[char] = glyph
	}
}

// Lookup: 지원 문자면 글리프를, 아니면 (빈 글리프, false)를 반환
func Lookup(char rune) (Glyph, bool) {
	glyph, ok := GlyphMap[char]
	return glyph, ok
}
