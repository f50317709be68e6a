package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMonitorWidth  = 1920
	testMonitorHeight = 1080
)

func countColor(f *Frame, color uint32) int {
	n := 0
	for _, c := range f.Pix() {
		if c == color {
			n++
		}
	}
	return n
}

// 렌더 후 모든 픽셀은 팔레트 3색 중 하나여야 한다
func TestRenderPaintsEveryPixel(t *testing.T) {
	f := NewFrame(96, 64)
	f.Render(50, 50, testMonitorWidth, testMonitorHeight, "Hello world", PlacementCenter)

	palette := map[uint32]bool{
		ColorBackground: true,
		ColorBoundary:   true,
		ColorText:       true,
	}
	for i, c := range f.Pix() {
		if !palette[c] {
			t.Fatalf("픽셀 %d가 팔레트 밖의 값 0x%08X", i, c)
		}
	}
	// (50,50)에서 시작하면 경계 영역과 내부가 둘 다 존재
	assert.Positive(t, countColor(f, ColorBoundary))
	assert.Positive(t, countColor(f, ColorBackground))
}

// 윈도우가 가장자리에서 BoundarySize보다 깊숙이 들어가면 경계색이 없다
func TestBoundaryInteriorHasNoOverlay(t *testing.T) {
	f := NewFrame(96, 64)
	f.Render(500, 500, testMonitorWidth, testMonitorHeight, "", PlacementOffscreen)

	assert.Zero(t, countColor(f, ColorBoundary))
	assert.Equal(t, 96*64, countColor(f, ColorBackground))
}

// 윈도우 전체가 경계 영역 안이면 전부 경계색
func TestBoundaryFullOverlay(t *testing.T) {
	f := NewFrame(96, 64)
	f.Render(0, 0, testMonitorWidth, testMonitorHeight, "", PlacementOffscreen)

	assert.Equal(t, 96*64, countColor(f, ColorBoundary))
}

// 코너 픽셀은 두 경계 조건을 동시에 만족해도 색은 정확히 하나
func TestCornerPaintedOnce(t *testing.T) {
	f := NewFrame(200, 200)
	f.Render(0, 0, testMonitorWidth, testMonitorHeight, "", PlacementOffscreen)

	assert.Equal(t, ColorBoundary, f.At(0, 0))
	assert.Equal(t, ColorBoundary, f.At(99, 99))
	// 코너 영역 밖의 내부 픽셀은 배경
	assert.Equal(t, ColorBackground, f.At(150, 150))
}

// 없는 문자는 그리지 않되 자리는 advance 하나만큼 차지한다
func TestDrawTextUnknownCharLeavesGap(t *testing.T) {
	withDigit := NewFrame(200, 100)
	withDigit.Clear(ColorBackground)
	withDigit.DrawText(10, 10, "H1i")

	withSpace := NewFrame(200, 100)
	withSpace.Clear(ColorBackground)
	withSpace.DrawText(10, 10, "H i")

	assert.Equal(t, withSpace.Pix(), withDigit.Pix())

	// 문자를 빼버린 것과는 다르다 (뒤 문자가 밀리지 않으므로)
	noGap := NewFrame(200, 100)
	noGap.Clear(ColorBackground)
	noGap.DrawText(10, 10, "Hi")

	assert.NotEqual(t, noGap.Pix(), withDigit.Pix())
}

// 시작점이 버퍼에서 아무리 멀어도 버퍼 밖 쓰기/패닉이 없어야 한다
func TestDrawTextFarOffscreenIsNoop(t *testing.T) {
	f := NewFrame(64, 48)
	f.Clear(ColorBackground)
	base := append([]uint32(nil), f.Pix()...)

	assert.NotPanics(t, func() {
		f.DrawText(10, -10000, "Hello")
		f.DrawText(-10000, 10, "Hello")
		f.DrawText(1<<20, 1<<20, "Hello")
	})
	assert.Equal(t, base, f.Pix())

	// 일부만 걸치는 경우엔 걸친 픽셀만 찍힌다
	assert.NotPanics(t, func() {
		f.DrawText(-5, -5, "H")
	})
	assert.Positive(t, countColor(f, ColorText))
}

// 1920x1080 모니터, 960x540 윈도우, 위치 (0,0) 시나리오
func TestScenarioTopLeftQuadrant(t *testing.T) {
	f := NewFrame(960, 540)
	f.Render(0, 0, testMonitorWidth, testMonitorHeight, "ictf{Teeheehee_you_found_me}", PlacementOffscreen)

	// 위쪽 100행은 전부 경계색
	for y := 0; y < BoundarySize; y++ {
		for x := 0; x < 960; x++ {
			require.Equal(t, ColorBoundary, f.At(x, y), "(%d,%d)", x, y)
		}
	}
	// 왼쪽 100열도 전부 경계색
	for y := 0; y < 540; y++ {
		for x := 0; x < BoundarySize; x++ {
			require.Equal(t, ColorBoundary, f.At(x, y), "(%d,%d)", x, y)
		}
	}

	// 내부는 배경색
	assert.Equal(t, ColorBackground, f.At(500, 500))

	// offscreen 배치 메시지는 이 위치에서 보이지 않는다
	assert.Zero(t, countColor(f, ColorText))
}

// "Hi" 스탬핑: H는 x=10부터, i는 advance 18 뒤인 x=28부터
func TestDrawTextAdvance(t *testing.T) {
	require.Equal(t, 18, GlyphAdvance)

	f := NewFrame(200, 100)
	f.Clear(ColorBackground)
	f.DrawText(10, 10, "Hi")

	// H 첫 열의 3x3 블록
	assert.Equal(t, ColorText, f.At(10, 10))
	assert.Equal(t, ColorText, f.At(12, 12))

	// 문자 사이 간격 열 [25,28)에는 잉크가 없다
	for y := 0; y < 100; y++ {
		for x := 25; x < 28; x++ {
			require.Equal(t, ColorBackground, f.At(x, y), "(%d,%d)", x, y)
		}
	}

	// i의 윗점은 글리프 3열째 → x = 28 + 2*3
	assert.Equal(t, ColorText, f.At(34, 10))
}

func TestPlacementAnchors(t *testing.T) {
	x, y := PlacementOffscreen.Anchor(testMonitorWidth, testMonitorHeight, "Hi")
	assert.Equal(t, 960, x)
	assert.Equal(t, -2080, y)

	x, y = PlacementCenter.Anchor(testMonitorWidth, testMonitorHeight, "Hi")
	assert.Equal(t, 942, x) // 960 - TextWidth("Hi")/2
	assert.Equal(t, 540, y)

	assert.Equal(t, PlacementCenter, ParsePlacement("center"))
	assert.Equal(t, PlacementOffscreen, ParsePlacement("offscreen"))
	assert.Equal(t, PlacementOffscreen, ParsePlacement("banana"))
}

// 같은 윈도우 위치에서 center 배치는 보이고 offscreen 배치는 안 보인다
func TestRenderPlacementVisibility(t *testing.T) {
	center := NewFrame(960, 540)
	center.Render(480, 270, testMonitorWidth, testMonitorHeight, "Hi", PlacementCenter)
	assert.Positive(t, countColor(center, ColorText))

	offscreen := NewFrame(960, 540)
	offscreen.Render(480, 270, testMonitorWidth, testMonitorHeight, "Hi", PlacementOffscreen)
	assert.Zero(t, countColor(offscreen, ColorText))
}

func TestTextWidth(t *testing.T) {
	assert.Zero(t, TextWidth(""))
	assert.Equal(t, GlyphAdvance, TextWidth("A"))
	assert.Equal(t, 28*GlyphAdvance, TextWidth("ictf{Teeheehee_you_found_me}"))
}
