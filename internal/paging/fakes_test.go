package paging

import (
	"fmt"
	"sort"
	"time"
)

// page is the content handle used by the tests
type page struct {
	index int
}

// recordingSource hands out pages and tracks which are live
type recordingSource struct {
	live     map[int]int
	provided []int
	released []int
	maxLive  int
}

func newRecordingSource() *recordingSource {
	return &recordingSource{live: make(map[int]int)}
}

func (s *recordingSource) Provide(index int) *page {
	s.live[index]++
	if s.live[index] > 1 {
		panic(fmt.Sprintf("page %d provided twice", index))
	}
	s.provided = append(s.provided, index)
	if n := len(s.live); n > s.maxLive {
		s.maxLive = n
	}
	return &page{index: index}
}

func (s *recordingSource) Release(p *page) {
	s.live[p.index]--
	if s.live[p.index] == 0 {
		delete(s.live, p.index)
	}
	s.released = append(s.released, p.index)
}

func (s *recordingSource) liveIndices() []int {
	out := make([]int, 0, len(s.live))
	for idx := range s.live {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// fakeViewport records jumps and animations without echoing offsets
type fakeViewport struct {
	offset     float64
	extent     float64
	jumps      []float64
	animations []float64
}

func newFakeViewport(extent float64) *fakeViewport {
	return &fakeViewport{extent: extent}
}

func (v *fakeViewport) Offset() float64 { return v.offset }
func (v *fakeViewport) Extent() float64 { return v.extent }

func (v *fakeViewport) SetOffset(offset float64) {
	v.offset = offset
	v.jumps = append(v.jumps, offset)
}

func (v *fakeViewport) AnimateOffset(offset float64) {
	v.animations = append(v.animations, offset)
}

// manualScheduler fires scheduled callbacks when the test advances its clock
type manualScheduler struct {
	now     time.Duration
	nextID  int
	pending map[int]scheduled
}

type scheduled struct {
	due time.Duration
	fn  func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[int]scheduled)}
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) func() {
	id := s.nextID
	s.nextID++
	s.pending[id] = scheduled{due: s.now + d, fn: fn}
	return func() { delete(s.pending, id) }
}

// Advance moves the clock forward by d, firing due callbacks in order
func (s *manualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		id, ok := s.nextDue(end)
		if !ok {
			break
		}
		item := s.pending[id]
		delete(s.pending, id)
		s.now = item.due
		item.fn()
	}
	s.now = end
}

func (s *manualScheduler) nextDue(end time.Duration) (int, bool) {
	best, found := 0, false
	for id, item := range s.pending {
		if item.due > end {
			continue
		}
		if !found || item.due < s.pending[best].due || (item.due == s.pending[best].due && id < best) {
			best, found = id, true
		}
	}
	return best, found
}

// eventLog collects observer notifications as strings
type eventLog struct {
	events []string
}

func (l *eventLog) observer() Observer {
	return Observer{
		WillBeginDragging:     func() { l.add("will-begin-dragging") },
		DidScroll:             func(float64) { l.add("did-scroll") },
		DidEndDragging:        func() { l.add("did-end-dragging") },
		WillBeginDecelerating: func() { l.add("will-begin-decelerating") },
		DidEndDecelerating:    func(i int) { l.add(fmt.Sprintf("did-end-decelerating(%d)", i)) },
		CurrentPageChanged:    func(i int) { l.add(fmt.Sprintf("current-page-changed(%d)", i)) },
	}
}

func (l *eventLog) add(s string) {
	l.events = append(l.events, s)
}
