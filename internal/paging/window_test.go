package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowReload(t *testing.T) {
	src := newRecordingSource()
	w := NewWindow[*page](src, false)

	w.Reload(5)
	assert.Equal(t, 0, w.Center())
	assert.Equal(t, []int{0, 1}, src.liveIndices())

	w.Reload(0)
	assert.Equal(t, NoPage, w.Center())
	assert.Empty(t, src.liveIndices())
	assert.Empty(t, w.Slots(10))
}

func TestWindowSetWindowMembership(t *testing.T) {
	for _, circular := range []bool{false, true} {
		for count := 1; count <= 6; count++ {
			src := newRecordingSource()
			w := NewWindow[*page](src, circular)
			w.Reload(count)
			for c := 0; c < count; c++ {
				w.SetWindow(c)

				allowed := map[int]bool{c: true}
				prev, next, hasPrev, hasNext := Neighbors(c, count, circular)
				if hasPrev {
					allowed[prev] = true
				}
				if hasNext {
					allowed[next] = true
				}
				materialized := w.Materialized()
				assert.LessOrEqual(t, len(materialized), 3)
				for _, idx := range materialized {
					assert.True(t, allowed[idx], "count=%d center=%d index=%d", count, c, idx)
				}
				assert.Len(t, materialized, len(allowed))
			}
			assert.LessOrEqual(t, src.maxLive, 3)
		}
	}
}

func TestWindowRecyclesOnlyLeavingPages(t *testing.T) {
	src := newRecordingSource()
	w := NewWindow[*page](src, false)
	w.Reload(10)
	src.provided, src.released = nil, nil

	w.SetWindow(1)
	assert.Equal(t, []int{2}, src.provided)
	assert.Empty(t, src.released)

	w.SetWindow(2)
	assert.Equal(t, []int{2, 3}, src.provided)
	assert.Equal(t, []int{0}, src.released)

	w.SetWindow(7)
	assert.Equal(t, []int{6, 7, 8}, src.liveIndices())
}

func TestWindowTwoPageRingMaterializesOnce(t *testing.T) {
	src := newRecordingSource()
	w := NewWindow[*page](src, true)
	w.Reload(2)

	assert.Equal(t, []int{0, 1}, src.liveIndices())
	prev, ok := w.IndexAt(SlotPrev)
	require.True(t, ok)
	next, ok := w.IndexAt(SlotNext)
	require.True(t, ok)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 1, next)
	assert.Len(t, w.Slots(1), 3)
}

func TestWindowStage(t *testing.T) {
	src := newRecordingSource()
	w := NewWindow[*page](src, false)
	w.Reload(4)

	w.Stage(0, 3, Forward)
	idx, ok := w.IndexAt(SlotNext)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, []int{0, 3}, src.liveIndices())

	content, ok := w.ContentAt(3)
	require.True(t, ok)
	assert.Equal(t, 3, content.index)

	_, ok = w.ContentAt(1)
	assert.False(t, ok)
}

func TestWindowStageBackwardOnRing(t *testing.T) {
	src := newRecordingSource()
	w := NewWindow[*page](src, true)
	w.Reload(6)

	w.Stage(0, 3, Backward)
	prev, _ := w.IndexAt(SlotPrev)
	next, _ := w.IndexAt(SlotNext)
	assert.Equal(t, 3, prev)
	assert.Equal(t, 1, next)
	assert.Equal(t, []int{0, 1, 3}, src.liveIndices())
}

func TestWindowSlotsOffsets(t *testing.T) {
	src := newRecordingSource()
	w := NewWindow[*page](src, true)
	w.Reload(4)

	slots := w.Slots(100)
	require.Len(t, slots, 3)
	assert.Equal(t, SlotPrev, slots[0].Slot)
	assert.Equal(t, 3, slots[0].Index)
	assert.Equal(t, -100.0, slots[0].Offset)
	assert.Equal(t, 0.0, slots[1].Offset)
	assert.Equal(t, 100.0, slots[2].Offset)
}

func TestWindowCircularToggle(t *testing.T) {
	src := newRecordingSource()
	w := NewWindow[*page](src, false)
	w.Reload(4)
	assert.Equal(t, []int{0, 1}, src.liveIndices())

	w.SetCircular(true)
	w.SetWindow(0)
	assert.Equal(t, []int{0, 1, 3}, src.liveIndices())
}
