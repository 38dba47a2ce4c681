package ui

import (
	"lazypager/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg advances the viewport animation by one frame
type frameMsg struct{}

// scheduleMsg fires a callback registered with the tea scheduler
type scheduleMsg struct {
	id int
}

// pagerMsg contains the result of showing a page in the external pager
type pagerMsg struct {
	index int
	err   error
}

// clearStatusMsg clears the status message
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
