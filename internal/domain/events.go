package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemAppended     EventType = "ItemAppended"
	EventItemRemoved      EventType = "ItemRemoved"
	EventItemsMoved       EventType = "ItemsMoved"
	EventListCleared      EventType = "ListCleared"
	EventSelectionChanged EventType = "SelectionChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemAppendedEvent is emitted when a new item lands in the list
type ItemAppendedEvent struct {
	Label string
	Index int
}

func (e ItemAppendedEvent) Type() EventType { return EventItemAppended }

// ItemRemovedEvent is emitted when items are removed from the list
type ItemRemovedEvent struct {
	Labels []string
}

func (e ItemRemovedEvent) Type() EventType { return EventItemRemoved }

// ItemsMovedEvent is emitted when the selected items shift position
type ItemsMovedEvent struct {
	Delta int
}

func (e ItemsMovedEvent) Type() EventType { return EventItemsMoved }

// ListClearedEvent is emitted when the whole list is cleared
type ListClearedEvent struct{}

func (e ListClearedEvent) Type() EventType { return EventListCleared }

// SelectionChangedEvent is emitted after the list arbitrates a selection flip
type SelectionChangedEvent struct {
	Selected []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ConfigLoadedEvent is emitted when configuration has been read
type ConfigLoadedEvent struct {
	Path  string
	Items []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when the persisted state should be refreshed
type ConfigChangedEvent struct {
	Items       []string
	Multiselect bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
