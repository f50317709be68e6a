package commander

import (
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"
)

// CommandCode: 명령 코드
type CommandCode uint8

const (
	CmdRedraw CommandCode = iota
	CmdConfigure
	CmdExit
)

// X11 KeySym 상수 정의 (X11/keysymdef.h 참고)
const (
	XK_ESC = 0xFF1B
)

// CommandInput 인터페이스
type CommandInput interface {
	IsCommandInput()
}

// ConfigureInput: 이동/리사이즈 알림의 새 지오메트리
type ConfigureInput struct {
	X, Y          int
	Width, Height int
}

func (c ConfigureInput) IsCommandInput() {}

// Command: 실행할 명령
type Command struct {
	Code  CommandCode
	Input CommandInput
}

// Commander: X 이벤트 수집 및 변환 담당
type Commander struct {
	xu         *xgbutil.XUtil
	deleteAtom xproto.Atom
	eventChan  chan Command
}

func NewCommander(xu *xgbutil.XUtil) *Commander {
	// WM 종료 메시지 판별용 atom. 실패하면 0 (어떤 ClientMessage와도 안 맞음)
	deleteAtom, _ := xprop.Atm(xu, "WM_DELETE_WINDOW")
	return &Commander{
		xu:         xu,
		deleteAtom: deleteAtom,
		eventChan:  make(chan Command, 20),
	}
}

// TranslateXEventToCommand: X 이벤트 -> Command 변환
func (c *Commander) TranslateXEventToCommand(ev xgb.Event) (Command, bool) {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		// 연속 Expose 중 마지막 것에서만 리드로우
		if e.Count != 0 {
			return Command{}, false
		}
		return Command{Code: CmdRedraw}, true

	case xproto.ConfigureNotifyEvent:
		return Command{
			Code: CmdConfigure,
			Input: ConfigureInput{
				X:      int(e.X),
				Y:      int(e.Y),
				Width:  int(e.Width),
				Height: int(e.Height),
			},
		}, true

	case xproto.ClientMessageEvent:
		if len(e.Data.Data32) > 0 && xproto.Atom(e.Data.Data32[0]) == c.deleteAtom {
			return Command{Code: CmdExit}, true
		}

	case xproto.DestroyNotifyEvent:
		return Command{Code: CmdExit}, true

	case xproto.KeyPressEvent:
		keysym := keybind.KeysymGet(c.xu, e.Detail, 0)
		if keysym == XK_ESC {
			return Command{Code: CmdExit}, true
		}
		if keybind.LookupString(c.xu, e.State, e.Detail) == "q" {
			return Command{Code: CmdExit}, true
		}
	}
	return Command{}, false
}

// collectCommands: X 이벤트를 수신하고 Command로 변환
func (c *Commander) collectCommands() {
	for {
		ev, err := c.xu.Conn().WaitForEvent()
		if ev == nil && err == nil {
			// 연결 종료
			close(c.eventChan)
			return
		}
		if err != nil {
			// X 에러 이벤트는 프레임 단위로 무해. 다음 이벤트로
			log.Println("X 이벤트 에러:", err)
			continue
		}
		cmd, ok := c.TranslateXEventToCommand(ev)
		if ok {
			c.eventChan <- cmd
		}
	}
}

// StartListening: 이벤트 루프 실행 (별도 고루틴)
func (c *Commander) StartListening() {
	go c.collectCommands()
}

// CommandChan: Command 채널 반환
func (c *Commander) CommandChan() chan Command {
	return c.eventChan
}
