package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// teaScheduler runs delayed callbacks on the Bubble Tea event loop.
// Schedule queues a tea.Tick; the callback runs when its scheduleMsg comes back through Update.
type teaScheduler struct {
	nextID  int
	pending map[int]func()
	queued  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[int]func())}
}

// Schedule implements paging.Scheduler
func (s *teaScheduler) Schedule(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return scheduleMsg{id: id}
	}))
	return func() { delete(s.pending, id) }
}

// fire runs the callback for id unless it was cancelled
func (s *teaScheduler) fire(id int) {
	fn, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	fn()
}

// drain returns the ticks queued since the last drain
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}
