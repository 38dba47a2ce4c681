package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"lazypager/internal/domain"
)

// PagerOps shows page content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal is handed over to ov
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowPage shows a whole page using ov pager, wrapped to width
func (p *PagerOps) ShowPage(page *domain.Page, width int) error {
	if page == nil {
		return fmt.Errorf("no page to show")
	}
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	content, err := renderPage(page, width, "")
	if err != nil {
		return err
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// renderPage formats a page for the pager. Markdown pages are rendered with glamour;
// an empty style picks one from the terminal background.
func renderPage(page *domain.Page, width int, style string) (string, error) {
	text := pageText(page)
	if !isMarkdown(page.Path) {
		return text, nil
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	opts := []glamour.TermRendererOption{styleOpt}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", page.Path, err)
	}
	return out, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func pageText(page *domain.Page) string {
	if page.Title == "" {
		return page.Body
	}
	return "# " + page.Title + "\n\n" + page.Body
}
