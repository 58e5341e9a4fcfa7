package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"picklist/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventItemAppended     = domain.EventItemAppended
	EventItemRemoved      = domain.EventItemRemoved
	EventItemsMoved       = domain.EventItemsMoved
	EventListCleared      = domain.EventListCleared
	EventSelectionChanged = domain.EventSelectionChanged
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventConfigChanged    = domain.EventConfigChanged
	EventError            = domain.EventError
)

// Re-export domain event types
type ItemAppendedEvent = domain.ItemAppendedEvent
type ItemRemovedEvent = domain.ItemRemovedEvent
type ItemsMovedEvent = domain.ItemsMovedEvent
type ListClearedEvent = domain.ListClearedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]registration
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

type registration struct {
	id      int
	handler EventHandler
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]registration),
		eventChan: make(chan DomainEvent, 100),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Selection changes are too frequent to log
	if event.Type() != EventSelectionChanged {
		log.Printf("EventBus: publishing %s", event.Type())
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		regs := b.handlers[eventType]
		for i, r := range regs {
			if r.id == id {
				b.handlers[eventType] = append(regs[:i], regs[i+1:]...)
				return
			}
		}
	}
}

// Close stops the dispatcher and drains any queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			regs := b.handlers[event.Type()]
			regsCopy := make([]registration, len(regs))
			copy(regsCopy, regs)
			b.mu.RUnlock()

			for _, r := range regsCopy {
				func(h EventHandler, eventType EventType) {
					defer func() {
						if rec := recover(); rec != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, rec, debug.Stack())
						}
					}()
					h(event)
				}(r.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
