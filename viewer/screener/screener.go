package screener

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Screener 구조체: X 윈도우/GC와 프레임 버퍼를 들고,
//
//	리드로우 신호마다 프레임을 다시 그려서 X 서버로 보내는 역할 수행
type Screener struct {
	frame *Frame

	// 마지막으로 알려진 윈도우 위치 (월드 좌표). 라이브 조회가 실패하면 이 값을 쓴다
	winX int
	winY int

	// 프로세스 시작 시 한 번 캡처한 모니터 크기
	monitorWidth  int
	monitorHeight int

	xu     *xgbutil.XUtil // XGBUtil 연결 객체
	window xproto.Window
	gc     xproto.Gcontext
	depth  byte
}

// MonitorSize: 기본 스크린(모니터) 크기. 모니터가 없으면 에러
func MonitorSize(xu *xgbutil.XUtil) (int, int, error) {
	screen := xu.Screen()
	width := int(screen.WidthInPixels)
	height := int(screen.HeightInPixels)
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("사용 가능한 모니터가 없습니다 (%dx%d)", width, height)
	}
	return width, height, nil
}

// NewScreener: XGBUtil을 기반으로 윈도우/GC 생성 + Screener 초기화
func NewScreener(xu *xgbutil.XUtil, width, height, monitorWidth, monitorHeight int, title string) (*Screener, error) {
	setup := xproto.Setup(xu.Conn())
	defaultScreen := setup.DefaultScreen(xu.Conn())

	windowId, err := xproto.NewWindowId(xu.Conn())
	if err != nil {
		return nil, fmt.Errorf("윈도우 생성 실패: %v", err)
	}

	xproto.CreateWindow(
		xu.Conn(),
		xproto.WindowClassCopyFromParent,
		windowId,
		defaultScreen.Root,
		0, 0,
		uint16(width),
		uint16(height),
		0,
		xproto.WindowClassInputOutput,
		defaultScreen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			defaultScreen.BlackPixel,
			xproto.EventMaskExposure | xproto.EventMaskStructureNotify | xproto.EventMaskKeyPress,
		},
	)

	gcId, err := xproto.NewGcontextId(xu.Conn())
	if err != nil {
		return nil, fmt.Errorf("GC 생성 실패: %v", err)
	}

	xproto.CreateGC(
		xu.Conn(),
		gcId,
		xproto.Drawable(windowId),
		xproto.GcForeground|xproto.GcBackground,
		[]uint32{
			defaultScreen.BlackPixel,
			defaultScreen.WhitePixel,
		},
	)

	// 타이틀 + WM 종료 프로토콜 + 리사이즈 금지 힌트
	_ = ewmh.WmNameSet(xu, windowId, title)
	if deleteAtom, err := xprop.Atm(xu, "WM_DELETE_WINDOW"); err == nil {
		_ = xprop.ChangeProp32(xu, windowId, "WM_PROTOCOLS", "ATOM", uint(deleteAtom))
	}
	_ = icccm.WmNormalHintsSet(xu, windowId, &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		MinWidth:  uint(width),
		MinHeight: uint(height),
		MaxWidth:  uint(width),
		MaxHeight: uint(height),
	})

	// 윈도우 맵핑(표시)
	xproto.MapWindow(xu.Conn(), windowId)

	s := &Screener{
		frame:         NewFrame(width, height),
		monitorWidth:  monitorWidth,
		monitorHeight: monitorHeight,
		xu:            xu,
		window:        windowId,
		gc:            gcId,
		depth:         defaultScreen.RootDepth,
	}

	// 초기 위치는 라이브 조회로 시딩. 실패하면 원점 가정
	if x, y, err := s.QueryPosition(); err == nil {
		s.winX, s.winY = x, y
	}

	return s, nil
}

// Window: 윈도우 id getter
func (s *Screener) Window() xproto.Window {
	return s.window
}

// Frame: 현재 프레임 getter
func (s *Screener) Frame() *Frame {
	return s.frame
}

// Position: 캐시된 윈도우 위치
func (s *Screener) Position() (int, int) {
	return s.winX, s.winY
}

// SetPosition: 이동 알림으로 받은 위치를 캐시에 반영
func (s *Screener) SetPosition(x, y int) {
	s.winX = x
	s.winY = y
}

// QueryPosition: X 서버에 현재 위치 조회 (윈도우 원점 → 루트 좌표)
func (s *Screener) QueryPosition() (int, int, error) {
	reply, err := xproto.TranslateCoordinates(
		s.xu.Conn(), s.window, s.xu.RootWin(), 0, 0,
	).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.DstX), int(reply.DstY), nil
}

// Resize: 윈도우 크기가 바뀌면 프레임을 새 크기로 재할당
func (s *Screener) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.frame.Width() && height == s.frame.Height() {
		return
	}
	s.frame = NewFrame(width, height)
}

// Redraw: 리드로우 한 번. 위치 재조회 → 렌더 → Flush
func (s *Screener) Redraw(message string, placement Placement) {
	// 라이브 위치가 캐시와 다르면 라이브가 이긴다
	if x, y, err := s.QueryPosition(); err == nil {
		s.winX, s.winY = x, y
	}

	s.frame.Render(s.winX, s.winY, s.monitorWidth, s.monitorHeight, message, placement)
	s.FlushBuffer()
}

// FlushBuffer: 프레임 버퍼 → X 서버로 전송
func (s *Screener) FlushBuffer() {
	width := s.frame.Width()
	height := s.frame.Height()
	pix := s.frame.Pix()

	chunkHeight := 64

	for yStart := 0; yStart < height; yStart += chunkHeight {
		h := chunkHeight
		if yStart+h > height {
			h = height - yStart
		}

		data := make([]byte, width*h*4)
		idx := 0
		for row := yStart; row < yStart+h; row++ {
			for col := 0; col < width; col++ {
				c := pix[row*width+col]
				// ARGB → B, G, R, X
				r := byte((c >> 16) & 0xFF)
				g := byte((c >> 8) & 0xFF)
				b := byte(c & 0xFF)
				data[idx+0] = b
				data[idx+1] = g
				data[idx+2] = r
				data[idx+3] = 0
				idx += 4
			}
		}

		xproto.PutImage(
			s.xu.Conn(),
			xproto.ImageFormatZPixmap,
			xproto.Drawable(s.window),
			s.gc,
			uint16(width),
			uint16(h),
			0, int16(yStart),
			0,
			s.depth,
			data,
		)
	}
}
