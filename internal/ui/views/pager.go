package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lazypager/internal/paging"
)

// maxDots is the largest page count rendered as an indicator dot row
const maxDots = 30

// PageView is a page placed on the scroll axis
type PageView struct {
	Index  int
	Title  string
	Body   string
	Offset float64 // leading edge along the axis
}

// PagerState is everything the pager frame needs to render
type PagerState struct {
	Pages     []PageView
	Offset    float64
	Width     int
	Height    int
	Direction paging.Direction
}

// RenderPager composes the pages visible through the viewport into a width x height block.
// Pages are cut to the viewport so a page halfway through a swipe shows on both edges.
func RenderPager(styles *Styles, state PagerState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	if len(state.Pages) == 0 {
		return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center,
			styles.Empty.Render("no pages"))
	}

	cells := make([][]string, state.Height)
	for r := range cells {
		cells[r] = blankCells(state.Width)
	}

	origin := int(math.Round(state.Offset))
	for _, p := range state.Pages {
		lines := pageLines(p, state.Width, state.Height)
		shift := int(math.Round(p.Offset)) - origin
		if state.Direction == paging.Vertical {
			for r := range cells {
				src := r - shift
				if src < 0 || src >= len(lines) {
					continue
				}
				copy(cells[r], lines[src])
			}
			continue
		}
		for r := range cells {
			line := lines[r]
			for c := range line {
				dst := c + shift
				if dst < 0 || dst >= state.Width {
					continue
				}
				cells[r][dst] = line[c]
			}
		}
	}

	out := make([]string, len(cells))
	for r, row := range cells {
		out[r] = strings.Join(repairCells(row), "")
	}
	return strings.Join(out, "\n")
}

// pageLines lays a page out as exactly height rows of width cells
func pageLines(p PageView, width, height int) [][]string {
	var text strings.Builder
	text.WriteString(fmt.Sprintf("%d. %s", p.Index+1, p.Title))
	text.WriteString("\n\n")
	text.WriteString(p.Body)

	wrapped := lipgloss.NewStyle().Width(width).Render(text.String())
	src := strings.Split(wrapped, "\n")

	lines := make([][]string, height)
	for r := range lines {
		line := ""
		if r < len(src) {
			line = src[r]
		}
		lines[r] = toCells(line, width)
	}
	return lines
}

func blankCells(width int) []string {
	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	return cells
}

// toCells splits s into width terminal cells. A wide rune fills its cell and leaves
// an empty string in the next one; zero-width runes join the preceding cell.
func toCells(s string, width int) []string {
	cells := blankCells(width)
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if col > 0 {
				cells[col-1] += string(r)
			}
			continue
		}
		if col+w > width {
			break
		}
		cells[col] = string(r)
		if w == 2 {
			cells[col+1] = ""
		}
		col += w
	}
	return cells
}

// repairCells blanks the halves of wide runes cut by the viewport edge or a neighboring page
func repairCells(row []string) []string {
	for c, cell := range row {
		if cell == "" && (c == 0 || runewidth.StringWidth(row[c-1]) != 2) {
			row[c] = " "
			continue
		}
		if runewidth.StringWidth(cell) == 2 && (c+1 >= len(row) || row[c+1] != "") {
			row[c] = " "
		}
	}
	return row
}

// RenderIndicator renders one dot per page, or a counter for long collections
func RenderIndicator(styles *Styles, current, visible, count int) string {
	if count == 0 {
		return styles.Dim.Render("0/0")
	}
	if count > maxDots {
		return styles.Status.Render(fmt.Sprintf("%d/%d", current+1, count))
	}

	dots := make([]string, count)
	for i := range dots {
		switch {
		case i == current:
			dots[i] = styles.DotCurrent.Render("●")
		case i == visible:
			dots[i] = styles.DotVisible.Render("◉")
		default:
			dots[i] = styles.DotOther.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// StatusInfo is the data shown in the status line
type StatusInfo struct {
	State    string
	Current  int
	Count    int
	Circular bool
	Autoplay bool
	Message  string
	IsError  bool
}

// RenderStatus renders the bottom status line
func RenderStatus(styles *Styles, info StatusInfo) string {
	var parts []string
	if info.Count > 0 {
		parts = append(parts, fmt.Sprintf("page %d/%d", info.Current+1, info.Count))
	} else {
		parts = append(parts, "empty")
	}
	parts = append(parts, info.State)
	if info.Circular {
		parts = append(parts, styles.StatusActive.Render("circular"))
	}
	if info.Autoplay {
		parts = append(parts, styles.StatusActive.Render("autoplay"))
	}

	line := styles.Status.Render(strings.Join(parts, " · "))
	if info.Message != "" {
		msgStyle := styles.Status
		if info.IsError {
			msgStyle = styles.StatusError
		}
		line += "  " + msgStyle.Render(info.Message)
	}
	return line
}
