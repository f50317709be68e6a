package commander

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// X 연결 없이 변환 로직만 검증 (키 입력 경로는 keysym 테이블이 필요해서 제외)
func testCommander() *Commander {
	return &Commander{
		deleteAtom: 42,
		eventChan:  make(chan Command, 1),
	}
}

func TestTranslateExpose(t *testing.T) {
	c := testCommander()

	cmd, ok := c.TranslateXEventToCommand(xproto.ExposeEvent{Count: 0})
	require.True(t, ok)
	assert.Equal(t, CmdRedraw, cmd.Code)

	// 연속 Expose의 중간 것은 무시
	_, ok = c.TranslateXEventToCommand(xproto.ExposeEvent{Count: 2})
	assert.False(t, ok)
}

func TestTranslateConfigureNotify(t *testing.T) {
	c := testCommander()

	cmd, ok := c.TranslateXEventToCommand(xproto.ConfigureNotifyEvent{
		X: -30, Y: 40, Width: 960, Height: 540,
	})
	require.True(t, ok)
	assert.Equal(t, CmdConfigure, cmd.Code)
	assert.Equal(t, ConfigureInput{X: -30, Y: 40, Width: 960, Height: 540}, cmd.Input)
}

func TestTranslateDeleteWindow(t *testing.T) {
	c := testCommander()

	data := xproto.ClientMessageDataUnionData32New([]uint32{42, 0, 0, 0, 0})
	cmd, ok := c.TranslateXEventToCommand(xproto.ClientMessageEvent{Format: 32, Data: data})
	require.True(t, ok)
	assert.Equal(t, CmdExit, cmd.Code)

	// 다른 atom의 ClientMessage는 무시
	other := xproto.ClientMessageDataUnionData32New([]uint32{7, 0, 0, 0, 0})
	_, ok = c.TranslateXEventToCommand(xproto.ClientMessageEvent{Format: 32, Data: other})
	assert.False(t, ok)
}

func TestTranslateDestroyNotify(t *testing.T) {
	c := testCommander()

	cmd, ok := c.TranslateXEventToCommand(xproto.DestroyNotifyEvent{})
	require.True(t, ok)
	assert.Equal(t, CmdExit, cmd.Code)
}
