package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	PageTitle    lipgloss.Style
	Dim          lipgloss.Style
	Frame        lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	StatusActive lipgloss.Style
	Prompt       lipgloss.Style
	Help         lipgloss.Style
	DotCurrent   lipgloss.Style
	DotVisible   lipgloss.Style
	DotOther     lipgloss.Style
	Empty        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		PageTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")),
		Dim: lipgloss.NewStyle().Faint(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusActive: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		DotCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		DotVisible:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		DotOther:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),
	}
}
