package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageChanged     EventType = "PageChanged"
	EventDragStarted     EventType = "DragStarted"
	EventDecelerated     EventType = "Decelerated"
	EventPagesReloaded   EventType = "PagesReloaded"
	EventReloadRequested EventType = "ReloadRequested"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageChangedEvent is emitted when the settled page changes
type PageChangedEvent struct {
	Index int
	Count int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// DragStartedEvent is emitted when the user grabs the pager
type DragStartedEvent struct {
	FromPage int
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DeceleratedEvent is emitted when a momentum scroll settles
type DeceleratedEvent struct {
	Index int
}

func (e DeceleratedEvent) Type() EventType { return EventDecelerated }

// PagesReloadedEvent is emitted after the page source was rescanned
type PagesReloadedEvent struct {
	Dir   string
	Count int
}

func (e PagesReloadedEvent) Type() EventType { return EventPagesReloaded }

// ReloadRequestedEvent asks the host to rescan the page source
type ReloadRequestedEvent struct{}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	PagesDir string
	LastPage int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when session state needs to be saved
type ConfigChangedEvent struct {
	LastPage int
	Circular bool
	Autoplay bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
