package paging

// ContentSource materializes page content on demand.
// Provide is called once per entry of an index into the window, Release once when it leaves.
type ContentSource[C any] interface {
	Provide(index int) C
	Release(content C)
}

// Slot is a position of the window relative to its center page
type Slot int

const (
	SlotPrev    Slot = -1
	SlotCurrent Slot = 0
	SlotNext    Slot = 1
)

// slotCount is the size of the recycling arena
const slotCount = 3

// Placement describes one occupied slot of the window
type Placement[C any] struct {
	Slot    Slot
	Index   int
	Content C
	Offset  float64 // leading edge of the slot frame along the scroll axis
}

// entry is one materialized page in the arena
type entry[C any] struct {
	index   int
	content C
	live    bool
}

// Window keeps at most three pages materialized around a center index
type Window[C any] struct {
	source   ContentSource[C]
	count    int
	circular bool
	center   int
	slots    [slotCount]int // logical index per slot (prev, current, next)
	arena    [slotCount]entry[C]
}

// NewWindow creates an empty window backed by source
func NewWindow[C any](source ContentSource[C], circular bool) *Window[C] {
	w := &Window[C]{
		source:   source,
		circular: circular,
		center:   NoPage,
	}
	w.slots = emptySlots()
	return w
}

// Reload releases every page and materializes the window around index 0
func (w *Window[C]) Reload(count int) {
	if count < 0 {
		count = 0
	}
	w.apply(emptySlots())
	w.count = count
	w.center = NoPage
	if count == 0 {
		return
	}
	w.SetWindow(0)
}

// SetCircular changes wraparound without touching the materialized pages.
// Callers recenter with SetWindow afterwards.
func (w *Window[C]) SetCircular(circular bool) {
	w.circular = circular
}

// SetWindow recenters the window on center, materializing {prev, center, next}
// and releasing everything else.
func (w *Window[C]) SetWindow(center int) {
	if w.count == 0 {
		return
	}
	center = Wrap(center, w.count, w.circular)
	desired := emptySlots()
	prev, next, hasPrev, hasNext := Neighbors(center, w.count, w.circular)
	if hasPrev {
		desired[slotPos(SlotPrev)] = prev
	}
	desired[slotPos(SlotCurrent)] = center
	if hasNext {
		desired[slotPos(SlotNext)] = next
	}
	w.center = center
	w.apply(desired)
}

// Stage places target in the slot next to center on the side of dir,
// so a transition can scroll exactly one slot to reach it.
func (w *Window[C]) Stage(center, target int, dir Transition) {
	if w.count == 0 {
		return
	}
	center = Wrap(center, w.count, w.circular)
	target = Wrap(target, w.count, w.circular)
	desired := emptySlots()
	prev, next, hasPrev, hasNext := Neighbors(center, w.count, w.circular)
	if hasPrev {
		desired[slotPos(SlotPrev)] = prev
	}
	desired[slotPos(SlotCurrent)] = center
	if hasNext {
		desired[slotPos(SlotNext)] = next
	}
	if dir == Backward {
		desired[slotPos(SlotPrev)] = target
	} else {
		desired[slotPos(SlotNext)] = target
	}
	w.center = center
	w.apply(desired)
}

// Center returns the index the window is centered on, NoPage when empty
func (w *Window[C]) Center() int {
	return w.center
}

// IndexAt returns the logical index held by slot
func (w *Window[C]) IndexAt(slot Slot) (int, bool) {
	if slot < SlotPrev || slot > SlotNext {
		return NoPage, false
	}
	idx := w.slots[slotPos(slot)]
	return idx, idx != NoPage
}

// ContentAt returns the live content for index, if materialized
func (w *Window[C]) ContentAt(index int) (C, bool) {
	for i := range w.arena {
		if w.arena[i].live && w.arena[i].index == index {
			return w.arena[i].content, true
		}
	}
	var zero C
	return zero, false
}

// Materialized returns the indices currently materialized, in arena order
func (w *Window[C]) Materialized() []int {
	indices := make([]int, 0, slotCount)
	for _, e := range w.arena {
		if e.live {
			indices = append(indices, e.index)
		}
	}
	return indices
}

// Slots returns the occupied slots positioned for a page extent of extent
func (w *Window[C]) Slots(extent float64) []Placement[C] {
	placements := make([]Placement[C], 0, slotCount)
	if w.center == NoPage {
		return placements
	}
	for pos, idx := range w.slots {
		if idx == NoPage {
			continue
		}
		content, ok := w.ContentAt(idx)
		if !ok {
			continue
		}
		slot := Slot(pos - 1)
		placements = append(placements, Placement[C]{
			Slot:    slot,
			Index:   idx,
			Content: content,
			Offset:  SlotOffset(w.center, slot, extent),
		})
	}
	return placements
}

// apply moves the window to the desired slot layout.
// Pages leaving the window are released before new ones are provided.
func (w *Window[C]) apply(desired [slotCount]int) {
	for i := range w.arena {
		e := &w.arena[i]
		if e.live && !containsIndex(desired, e.index) {
			w.source.Release(e.content)
			*e = entry[C]{index: NoPage}
		}
	}
	for _, idx := range desired {
		if idx == NoPage {
			continue
		}
		if _, ok := w.ContentAt(idx); ok {
			continue
		}
		for i := range w.arena {
			if !w.arena[i].live {
				w.arena[i] = entry[C]{index: idx, content: w.source.Provide(idx), live: true}
				break
			}
		}
	}
	w.slots = desired
}

// SlotOffset is the viewport offset at which slot starts when the window is centered on center
func SlotOffset(center int, slot Slot, extent float64) float64 {
	return float64(center+int(slot)) * extent
}

func slotPos(s Slot) int {
	return int(s) + 1
}

func emptySlots() [slotCount]int {
	return [slotCount]int{NoPage, NoPage, NoPage}
}

func containsIndex(slots [slotCount]int, index int) bool {
	for _, idx := range slots {
		if idx == index {
			return true
		}
	}
	return false
}
