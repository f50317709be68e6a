package screener

import (
	glp "go_boundary/viewer/screener/glyph"
)

// 렌더링 상수
const (
	BoundarySize = 100 // 모니터 가장자리 판정 폭 (픽셀)
	TextScale    = 3   // 글리프 확대 배율

	// 글리프 5픽셀 + 간격 1픽셀, 배율 적용
	GlyphAdvance = (glp.GlyphWidth + 1) * TextScale

	offscreenGap = 1000 // offscreen 배치 시 모니터 위로 띄우는 추가 거리
)

// 3색 팔레트 (ARGB)
const (
	ColorBackground uint32 = 0xFF000000 // 검정
	ColorBoundary   uint32 = 0xFF00FF00 // 초록
	ColorText       uint32 = 0xFFFFFFFF // 흰색
)

// Placement: 메시지 배치 정책
type Placement uint8

const (
	PlacementOffscreen Placement = iota // 모니터 위 멀리 바깥 (기본)
	PlacementCenter                     // 모니터 중앙
)

// ParsePlacement: 설정 문자열 → Placement. 모르는 값은 offscreen으로
func ParsePlacement(name string) Placement {
	if name == "center" {
		return PlacementCenter
	}
	return PlacementOffscreen
}

// TextWidth: advance 기준 문자열 전체 폭
func TextWidth(text string) int {
	return len([]rune(text)) * GlyphAdvance
}

// Anchor: 텍스트 시작점을 월드 좌표로 계산
// 윈도우 좌표로 바꾸려면 호출 측에서 윈도우 위치를 빼면 된다
func (p Placement) Anchor(monitorWidth, monitorHeight int, text string) (int, int) {
	switch p {
	case PlacementCenter:
		return monitorWidth/2 - TextWidth(text)/2, monitorHeight / 2
	default:
		// 수평은 중앙 유지, 수직은 화면 위 한참 바깥
		return monitorWidth / 2, -monitorHeight - offscreenGap
	}
}

// Frame: 리드로우 한 번이 그리는 픽셀 버퍼 (width*height, row-major ARGB)
type Frame struct {
	width  int
	height int
	pix    []uint32
}

// NewFrame: width*height 크기 프레임 할당
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

func (f *Frame) Width() int    { return f.width }
func (f *Frame) Height() int   { return f.height }
func (f *Frame) Pix() []uint32 { return f.pix }

// At: (x, y) 픽셀 값. 범위는 호출자가 보장
func (f *Frame) At(x, y int) uint32 {
	return f.pix[y*f.width+x]
}

// Clear: 전체 화면을 특정 색으로 채우기
func (f *Frame) Clear(color uint32) {
	for i := range f.pix {
		f.pix[i] = color
	}
}

// setPixel: 범위 체크 후 픽셀 세팅. 버퍼 밖이면 그냥 버린다
func (f *Frame) setPixel(x, y int, color uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = color
}

// DrawBoundary: 모니터 가장자리 BoundarySize 이내에 겹치는 픽셀을 경계색으로 덮는다
// 각 픽셀의 월드 좌표 = 윈도우 위치 + 윈도우 내 좌표
func (f *Frame) DrawBoundary(winX, winY, monitorWidth, monitorHeight int) {
	for y := 0; y < f.height; y++ {
		worldY := winY + y
		for x := 0; x < f.width; x++ {
			worldX := winX + x

			// 네 조건은 독립적. 여러 개 겹쳐도 색은 한 번만 칠한다
			if worldX < BoundarySize || worldX >= monitorWidth-BoundarySize ||
				worldY < BoundarySize || worldY >= monitorHeight-BoundarySize {
				f.pix[y*f.width+x] = ColorBoundary
			}
		}
	}
}

// drawGlyph: (x, y)부터 TextScale 배율로 글리프 하나 찍기
// 켜진 셀마다 TextScale x TextScale 블록을 칠한다
func (f *Frame) drawGlyph(x, y int, glyph glp.Glyph) {
	for row := 0; row < glp.GlyphHeight; row++ {
		lineBits := byte(glyph[row])
		for col := 0; col < glp.GlyphWidth; col++ {
			mask := byte(1 << (glp.GlyphWidth - 1 - col))
			if lineBits&mask == 0 {
				continue
			}
			for dy := 0; dy < TextScale; dy++ {
				for dx := 0; dx < TextScale; dx++ {
					f.setPixel(x+col*TextScale+dx, y+row*TextScale+dy, ColorText)
				}
			}
		}
	}
}

// DrawText: 왼쪽부터 advance 간격으로 글리프 나열
// 없는 문자는 그리지 않되 자리는 차지한다 (빈칸). 시작점은 음수/화면 밖 가능
func (f *Frame) DrawText(x, y int, text string) {
	for _, ch := range text {
		if glyph, ok := glp.Lookup(ch); ok {
			f.drawGlyph(x, y, glyph)
		}
		x += GlyphAdvance
	}
}

// Render: 프레임 전체를 처음부터 다시 그린다
// 1) 배경 채우기 2) 경계 오버레이 3) 배치 정책대로 텍스트 스탬핑
func (f *Frame) Render(winX, winY, monitorWidth, monitorHeight int, message string, placement Placement) {
	f.Clear(ColorBackground)
	f.DrawBoundary(winX, winY, monitorWidth, monitorHeight)

	// 월드 좌표 앵커 → 윈도우 좌표
	anchorX, anchorY := placement.Anchor(monitorWidth, monitorHeight, message)
	f.DrawText(anchorX-winX, anchorY-winY, message)
}
