package paging

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// State is the phase of the paging state machine
type State int

const (
	Idle State = iota
	Dragging
	Decelerating
	ProgrammaticTransition
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Decelerating:
		return "decelerating"
	case ProgrammaticTransition:
		return "transition"
	default:
		return "idle"
	}
}

// Viewport is the host scroll surface. Offsets are measured along the engine's direction axis.
type Viewport interface {
	// Offset returns the current scroll offset
	Offset() float64
	// Extent returns the size of one page along the axis
	Extent() float64
	// SetOffset jumps to offset without reporting it back
	SetOffset(offset float64)
	// AnimateOffset scrolls to offset and calls Engine.AnimationFinished when done.
	// A new call retargets the running animation.
	AnimateOffset(offset float64)
}

// Options configures an Engine
type Options struct {
	Direction      Direction
	Circular       bool
	Autoplay       bool
	AutoplayPeriod time.Duration
	Scheduler      Scheduler
	Logger         *log.Logger
}

// TransitionRequest is a pending programmatic navigation
type TransitionRequest struct {
	Target    int
	Hint      Transition
	Direction Transition // resolved
	Animated  bool
}

// Engine ties the viewport offset to the logical current page.
// It is not safe for concurrent use; every call must come from the host event loop.
type Engine[C any] struct {
	direction Direction
	circular  bool
	count     int
	current   int
	visible   int
	state     State
	request   *TransitionRequest

	window   *Window[C]
	viewport Viewport
	observer Observer
	autoplay *Autoplay
	logger   *log.Logger
}

// NewEngine creates an engine with no pages. Call Reload to populate it.
func NewEngine[C any](opts Options, source ContentSource[C], viewport Viewport) *Engine[C] {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine[C]{
		direction: opts.Direction,
		circular:  opts.Circular,
		current:   NoPage,
		visible:   NoPage,
		window:    NewWindow(source, opts.Circular),
		viewport:  viewport,
		logger:    logger.WithPrefix("paging"),
	}
	e.autoplay = NewAutoplay(opts.Scheduler, opts.AutoplayPeriod, e.autoplayReady, func() {
		e.MoveByPages(1, true)
	})
	if opts.Autoplay {
		e.autoplay.Enable(opts.AutoplayPeriod)
	}
	return e
}

// SetObserver replaces the notification handlers
func (e *Engine[C]) SetObserver(o Observer) {
	e.observer = o
}

// Direction returns the scroll axis
func (e *Engine[C]) Direction() Direction { return e.direction }

// Circular reports whether the page index wraps around
func (e *Engine[C]) Circular() bool { return e.circular }

// PageCount returns the number of logical pages
func (e *Engine[C]) PageCount() int { return e.count }

// CurrentPage returns the settled page, NoPage when empty
func (e *Engine[C]) CurrentPage() int { return e.current }

// VisiblePage returns the page nearest to the offset during a gesture, or the current page
func (e *Engine[C]) VisiblePage() int { return e.visible }

// State returns the current state machine phase
func (e *Engine[C]) State() State { return e.state }

// Request returns the in-flight transition, if any
func (e *Engine[C]) Request() (TransitionRequest, bool) {
	if e.request == nil {
		return TransitionRequest{}, false
	}
	return *e.request, true
}

// Window exposes the materialized pages for rendering
func (e *Engine[C]) Window() *Window[C] { return e.window }

// Autoplay returns the engine's autoplay timer
func (e *Engine[C]) Autoplay() *Autoplay { return e.autoplay }

// VisibleContent returns the content of the current page
func (e *Engine[C]) VisibleContent() (C, bool) {
	return e.window.ContentAt(e.current)
}

// SetCircular toggles wraparound. The page count is kept. Outside a programmatic
// transition the window is recentered so a gesture settles on the new neighbors.
func (e *Engine[C]) SetCircular(circular bool) {
	if e.circular == circular {
		return
	}
	e.circular = circular
	e.window.SetCircular(circular)
	if e.count > 0 && e.state != ProgrammaticTransition {
		e.window.SetWindow(e.current)
		if e.state != Idle {
			e.visible = e.indexAt(e.nearestSlot(e.viewport.Offset()))
		}
	}
	e.logger.Debug("circular changed", "circular", circular)
}

// Reload replaces the page count, drops every materialized page and returns to page 0
func (e *Engine[C]) Reload(count int) {
	if count < 0 {
		count = 0
	}
	e.state = Idle
	e.request = nil
	e.count = count
	e.window.Reload(count)
	if count == 0 {
		e.current = NoPage
	} else {
		e.current = 0
		e.viewport.SetOffset(SlotOffset(0, SlotCurrent, e.extent()))
	}
	e.visible = e.current
	e.autoplay.Reset()
	e.logger.Debug("reloaded", "pages", count)
}

// ReloadData reloads the current page count, re-providing every page
func (e *Engine[C]) ReloadData() {
	e.Reload(e.count)
}

// BeginDrag starts a user drag
func (e *Engine[C]) BeginDrag() {
	if e.count == 0 {
		return
	}
	switch e.state {
	case Dragging:
		return
	case ProgrammaticTransition:
		// the running animation stops where a touch lands; finish it at its target
		e.finishTransition()
	}
	e.state = Dragging
	e.visible = e.current
	e.logger.Debug("drag began", "page", e.current)
	e.observer.willBeginDragging()
}

// OffsetChanged reports a raw offset change from the viewport
func (e *Engine[C]) OffsetChanged(offset float64) {
	if e.count == 0 {
		return
	}
	if e.state == Dragging || e.state == Decelerating {
		e.visible = e.indexAt(e.nearestSlot(offset))
	}
	e.observer.didScroll(offset / e.extent())
}

// EndDrag ends a user drag. Without momentum the engine snaps to the nearest page.
func (e *Engine[C]) EndDrag(willDecelerate bool) {
	if e.count == 0 || e.state != Dragging {
		return
	}
	if willDecelerate {
		e.state = Decelerating
		e.observer.didEndDragging()
		e.observer.willBeginDecelerating()
		return
	}
	previous := e.current
	e.settle(e.viewport.Offset())
	e.state = Idle
	e.logger.Debug("drag ended", "page", e.current)
	e.observer.didEndDragging()
	if e.current != previous {
		e.observer.currentPageChanged(e.current)
	}
}

// Settle ends a deceleration at finalOffset
func (e *Engine[C]) Settle(finalOffset float64) {
	if e.count == 0 || e.state != Decelerating {
		return
	}
	previous := e.current
	e.settle(finalOffset)
	e.state = Idle
	e.logger.Debug("deceleration settled", "page", e.current)
	e.observer.didEndDecelerating(e.current)
	if e.current != previous {
		e.observer.currentPageChanged(e.current)
	}
}

// SetPage navigates to index using the shortest direction
func (e *Engine[C]) SetPage(index int, animated bool) {
	e.SetPageTransition(index, Auto, animated)
}

// SetPageTransition navigates to index. On a linear domain only one path exists,
// so the hint is overridden by the numeric direction.
func (e *Engine[C]) SetPageTransition(index int, hint Transition, animated bool) {
	if e.count == 0 {
		return
	}
	if e.state == Dragging || e.state == Decelerating {
		e.logger.Debug("page change ignored during gesture", "target", index, "state", e.state)
		return
	}
	target := Wrap(index, e.count, e.circular)
	if target == e.current {
		if e.state == ProgrammaticTransition {
			e.retargetHome(animated)
		}
		return
	}

	dir := ResolveDirection(e.current, target, e.count, e.circular, hint)
	if !e.circular {
		dir = ResolveDirection(e.current, target, e.count, false, Auto)
	}
	if e.request != nil {
		e.logger.Debug("transition superseded", "from", e.request.Target, "to", target)
	}
	e.request = &TransitionRequest{Target: target, Hint: hint, Direction: dir, Animated: animated}
	e.state = ProgrammaticTransition
	e.visible = target

	slot := SlotNext
	if dir == Backward {
		slot = SlotPrev
	}
	e.window.Stage(e.current, target, dir)
	dest := SlotOffset(e.current, slot, e.extent())
	e.logger.Debug("transition", "from", e.current, "to", target, "direction", dir, "animated", animated)

	if animated {
		e.viewport.AnimateOffset(dest)
		return
	}
	e.viewport.SetOffset(dest)
	e.finishTransition()
}

// MoveByPages moves delta pages away from the current page
func (e *Engine[C]) MoveByPages(delta int, animated bool) {
	if e.count == 0 {
		return
	}
	e.SetPageTransition(Wrap(e.current+delta, e.count, e.circular), Auto, animated)
}

// AnimationFinished completes a programmatic transition
func (e *Engine[C]) AnimationFinished() {
	if e.state != ProgrammaticTransition {
		return
	}
	e.finishTransition()
}

// retargetHome redirects an in-flight transition back to the current page
func (e *Engine[C]) retargetHome(animated bool) {
	e.request = &TransitionRequest{Target: e.current, Hint: Auto, Direction: Forward, Animated: animated}
	e.visible = e.current
	e.window.SetWindow(e.current)
	home := SlotOffset(e.current, SlotCurrent, e.extent())
	if animated {
		e.viewport.AnimateOffset(home)
		return
	}
	e.viewport.SetOffset(home)
	e.finishTransition()
}

func (e *Engine[C]) finishTransition() {
	req := e.request
	e.request = nil
	e.state = Idle
	if req == nil {
		return
	}
	previous := e.current
	e.current = req.Target
	e.visible = e.current
	e.window.SetWindow(e.current)
	e.viewport.SetOffset(SlotOffset(e.current, SlotCurrent, e.extent()))
	if e.current != previous {
		e.observer.currentPageChanged(e.current)
	}
}

// settle moves the current page to the slot nearest offset and recenters the window
func (e *Engine[C]) settle(offset float64) {
	e.current = e.indexAt(e.nearestSlot(offset))
	e.visible = e.current
	e.window.SetWindow(e.current)
	e.viewport.SetOffset(SlotOffset(e.current, SlotCurrent, e.extent()))
}

// nearestSlot rounds the offset to a window slot. Halfway points round away from the
// center page, toward the direction of travel. Overshoot stops at the neighbor.
func (e *Engine[C]) nearestSlot(offset float64) Slot {
	rel := offset/e.extent() - float64(e.window.Center())
	s := math.Round(rel)
	if s < float64(SlotPrev) {
		s = float64(SlotPrev)
	}
	if s > float64(SlotNext) {
		s = float64(SlotNext)
	}
	return Slot(s)
}

// indexAt returns the page held by slot, falling back to the current page for empty slots
func (e *Engine[C]) indexAt(slot Slot) int {
	if idx, ok := e.window.IndexAt(slot); ok {
		return idx
	}
	return e.current
}

func (e *Engine[C]) extent() float64 {
	if e.viewport == nil {
		return 1
	}
	if ext := e.viewport.Extent(); ext > 0 {
		return ext
	}
	return 1
}

func (e *Engine[C]) autoplayReady() bool {
	return e.state == Idle && e.count > 0
}
