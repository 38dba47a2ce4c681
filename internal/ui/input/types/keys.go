package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode key bindings
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	JumpPrev key.Binding
	JumpNext key.Binding
	First    key.Binding
	Last     key.Binding
	Goto     key.Binding
	Autoplay key.Binding
	Circular key.Binding
	Reload   key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←/h", "previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "down", "l", "j", " "),
			key.WithHelp("→/l", "next page"),
		),
		JumpPrev: key.NewBinding(
			key.WithKeys("pgup", "H", "K"),
			key.WithHelp("PgUp/H", "previous page, no animation"),
		),
		JumpNext: key.NewBinding(
			key.WithKeys("pgdown", "L", "J"),
			key.WithHelp("PgDn/L", "next page, no animation"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("Home", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G", "$"),
			key.WithHelp("End/G", "last page"),
		),
		Goto: key.NewBinding(
			key.WithKeys("g", ":"),
			key.WithHelp("g", "go to page"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle autoplay"),
		),
		Circular: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle circular"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload pages"),
		),
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open in pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Goto, k.Autoplay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.JumpPrev, k.JumpNext},
		{k.First, k.Last, k.Goto},
		{k.Autoplay, k.Circular, k.Reload},
		{k.Open, k.Help, k.Quit},
	}
}
