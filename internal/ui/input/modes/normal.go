package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lazypager/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true
	}

	// Everything below needs pages
	if ctx.PageCount() == 0 {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.MoveAction{Delta: -1, Animated: true}}, true
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.MoveAction{Delta: 1, Animated: true}}, true
	case key.Matches(msg, m.keys.JumpPrev):
		return []types.Action{types.MoveAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.JumpNext):
		return []types.Action{types.MoveAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.First):
		return []types.Action{types.GotoAction{Index: 0, Animated: true}}, true
	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.GotoAction{Index: ctx.PageCount() - 1, Animated: true}}, true
	case key.Matches(msg, m.keys.Goto):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true
	case key.Matches(msg, m.keys.Autoplay):
		return []types.Action{types.ToggleAutoplayAction{}}, true
	case key.Matches(msg, m.keys.Circular):
		return []types.Action{types.ToggleCircularAction{}}, true
	case key.Matches(msg, m.keys.Open):
		return []types.Action{types.OpenPagerAction{}}, true
	}

	// Digits jump straight to pages 1-9
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return []types.Action{types.GotoAction{Index: int(s[0] - '1'), Animated: true}}, true
	}

	return nil, false
}
