package types

import "lazypager/internal/paging"

// Navigation actions
type MoveAction struct {
	Delta    int
	Animated bool
}

func (a MoveAction) Type() string { return "move" }

type GotoAction struct {
	Index      int
	Transition paging.Transition
	Animated   bool
}

func (a GotoAction) Type() string { return "goto" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Pager settings actions
type ToggleAutoplayAction struct{}

func (a ToggleAutoplayAction) Type() string { return "toggle_autoplay" }

type ToggleCircularAction struct{}

func (a ToggleCircularAction) Type() string { return "toggle_circular" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

// View actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
