package views

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazypager/internal/paging"
)

func twoPages(extent float64) []PageView {
	return []PageView{
		{Index: 0, Title: "A", Body: "alpha", Offset: 0},
		{Index: 1, Title: "B", Body: "beta", Offset: extent},
	}
}

func TestRenderPagerHorizontalSplit(t *testing.T) {
	out := RenderPager(NewStyles(), PagerState{
		Pages:     twoPages(10),
		Offset:    5,
		Width:     10,
		Height:    3,
		Direction: paging.Horizontal,
	})

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 3)
	assert.Equal(t, "     2. B ", rows[0])
	for _, row := range rows {
		assert.Len(t, []rune(row), 10)
	}
}

func TestRenderPagerHorizontalSettled(t *testing.T) {
	out := RenderPager(NewStyles(), PagerState{
		Pages:     twoPages(10),
		Offset:    10,
		Width:     10,
		Height:    3,
		Direction: paging.Horizontal,
	})

	rows := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(rows[0], "2. B"))
	assert.True(t, strings.HasPrefix(rows[2], "beta"))
	assert.NotContains(t, out, "alpha")
}

func TestRenderPagerVertical(t *testing.T) {
	out := RenderPager(NewStyles(), PagerState{
		Pages:     twoPages(4),
		Offset:    2,
		Width:     10,
		Height:    4,
		Direction: paging.Vertical,
	})

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 4)
	assert.True(t, strings.HasPrefix(rows[0], "alpha"))
	assert.True(t, strings.HasPrefix(rows[2], "2. B"))
}

func TestRenderPagerWideRunes(t *testing.T) {
	pages := []PageView{
		{Index: 0, Title: "漢字", Body: "日本語のページ", Offset: 0},
		{Index: 1, Title: "絵", Body: "😀😀😀😀", Offset: 10},
	}
	for _, offset := range []float64{0, 3, 4, 5, 10} {
		out := RenderPager(NewStyles(), PagerState{
			Pages:     pages,
			Offset:    offset,
			Width:     10,
			Height:    3,
			Direction: paging.Horizontal,
		})
		for _, row := range strings.Split(out, "\n") {
			assert.Equal(t, 10, runewidth.StringWidth(row), "offset %v row %q", offset, row)
		}
	}

	settled := RenderPager(NewStyles(), PagerState{
		Pages:     pages,
		Offset:    0,
		Width:     10,
		Height:    3,
		Direction: paging.Horizontal,
	})
	assert.Equal(t, "1. 漢字   ", strings.Split(settled, "\n")[0])
}

func TestRenderPagerEmpty(t *testing.T) {
	out := RenderPager(NewStyles(), PagerState{Width: 20, Height: 3})
	assert.Contains(t, out, "no pages")
	assert.Empty(t, RenderPager(NewStyles(), PagerState{}))
}

func TestRenderIndicator(t *testing.T) {
	s := NewStyles()
	dots := RenderIndicator(s, 1, 2, 4)
	assert.Equal(t, 1, strings.Count(dots, "●"))
	assert.Equal(t, 1, strings.Count(dots, "◉"))
	assert.Equal(t, 2, strings.Count(dots, "○"))

	assert.Contains(t, RenderIndicator(s, 41, 41, 100), "42/100")
	assert.Contains(t, RenderIndicator(s, paging.NoPage, paging.NoPage, 0), "0/0")
}

func TestRenderStatus(t *testing.T) {
	line := RenderStatus(NewStyles(), StatusInfo{
		State:    "idle",
		Current:  2,
		Count:    5,
		Circular: true,
		Message:  "reloaded",
	})
	assert.Contains(t, line, "page 3/5")
	assert.Contains(t, line, "circular")
	assert.NotContains(t, line, "autoplay")
	assert.Contains(t, line, "reloaded")
}
