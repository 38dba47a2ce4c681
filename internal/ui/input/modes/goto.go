package modes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lazypager/internal/paging"
	"lazypager/internal/ui/input/types"
)

// GotoMode reads a 1-based page number. A leading '<' or '>' forces the
// transition backward or forward, a trailing '!' skips the animation.
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "Go to page: ", ti),
	}
}

// HandleKey turns a valid submission into a GotoAction
func (m *GotoMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() != "enter" || m.textInput == nil {
		return m.TextInputMode.HandleKey(msg, ctx)
	}

	action, err := ParseGoto(m.textInput.Value())
	if err != nil {
		// Let the model report the bad input
		return []types.Action{
			types.SubmitTextAction{Text: m.textInput.Value(), Mode: types.ModeGoto},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return []types.Action{action, types.ChangeModeAction{Mode: types.ModeNormal}}, true
}

// ParseGoto parses goto input such as "5", "<5", ">12!"
func ParseGoto(input string) (types.GotoAction, error) {
	s := strings.TrimSpace(input)
	action := types.GotoAction{Transition: paging.Auto, Animated: true}

	if strings.HasSuffix(s, "!") {
		action.Animated = false
		s = strings.TrimSuffix(s, "!")
	}
	switch {
	case strings.HasPrefix(s, "<"):
		action.Transition = paging.Backward
		s = s[1:]
	case strings.HasPrefix(s, ">"):
		action.Transition = paging.Forward
		s = s[1:]
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return types.GotoAction{}, fmt.Errorf("invalid page %q: %w", input, err)
	}
	action.Index = n - 1
	return action, nil
}
