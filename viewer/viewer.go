package viewer

import (
	"fmt"

	"go_boundary/viewer/commander"
	"go_boundary/viewer/screener"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// viewerState: 뷰어 수명주기. 윈도우 생성 전/후 두 상태뿐
type viewerState uint8

const (
	stateUninitialized viewerState = iota
	stateActive
)

// Viewer: screener와 commander를 가지고,
//
//	리드로우 신호 기반 이벤트 루프를 관리
type Viewer struct {
	xu *xgbutil.XUtil

	monitorWidth  int
	monitorHeight int

	screen    *screener.Screener
	commander *commander.Commander

	message   string
	placement screener.Placement
	title     string

	state   viewerState
	running bool
}

// NewViewer: X 연결 + 모니터 크기 캡처. 윈도우는 아직 만들지 않는다
func NewViewer(message, placementName, title string) (*Viewer, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("X 서버 연결 실패: %v", err)
	}
	keybind.Initialize(xu)

	monitorWidth, monitorHeight, err := screener.MonitorSize(xu)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		xu:            xu,
		monitorWidth:  monitorWidth,
		monitorHeight: monitorHeight,
		message:       message,
		placement:     screener.ParsePlacement(placementName),
		title:         title,
		state:         stateUninitialized,
		running:       true,
	}
	return v, nil
}

// activate: 모니터 절반 크기 윈도우 생성 + 첫 프레임. 한 번만 일어난다
func (v *Viewer) activate() error {
	if v.state == stateActive {
		return nil
	}

	screen, err := screener.NewScreener(
		v.xu,
		v.monitorWidth/2, v.monitorHeight/2,
		v.monitorWidth, v.monitorHeight,
		v.title,
	)
	if err != nil {
		return err
	}

	v.screen = screen
	v.commander = commander.NewCommander(v.xu)
	v.state = stateActive

	v.commander.StartListening()
	v.screen.Redraw(v.message, v.placement)
	return nil
}

// Run: 메인 이벤트 루프. 신호마다 프레임 전체를 다시 그린다
func (v *Viewer) Run() error {
	if err := v.activate(); err != nil {
		return err
	}

	for v.running {
		cmd, ok := <-v.commander.CommandChan()
		if !ok {
			// X 연결이 끊기면 루프 종료
			break
		}

		switch cmd.Code {
		case commander.CmdExit:
			v.running = false

		case commander.CmdConfigure:
			// 이동/리사이즈 알림 → 캐시 갱신 후 리드로우
			if input, ok := cmd.Input.(commander.ConfigureInput); ok {
				v.screen.SetPosition(input.X, input.Y)
				v.screen.Resize(input.Width, input.Height)
			}
			v.screen.Redraw(v.message, v.placement)

		case commander.CmdRedraw:
			v.screen.Redraw(v.message, v.placement)
		}
	}
	return nil
}

// Stop: Viewer 종료
func (v *Viewer) Stop() {
	v.running = false
}
