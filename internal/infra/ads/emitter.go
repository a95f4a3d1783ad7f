// Package ads provides rewarded ad implementations for the submission flow.
package ads

import (
	"sync"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"
)

// emitter keeps per-event handlers. Handlers run outside the emitter lock so
// they may call back into the ad.
type emitter struct {
	mu        sync.Mutex
	handlers  map[entity.AdEventType]map[uint64]service.AdEventHandler
	nextID    uint64
	destroyed bool
}

func newEmitter() *emitter {
	return &emitter{
		handlers: make(map[entity.AdEventType]map[uint64]service.AdEventHandler),
	}
}

func (e *emitter) On(eventType entity.AdEventType, handler service.AdEventHandler) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return func() {}
	}

	e.nextID++
	id := e.nextID
	if e.handlers[eventType] == nil {
		e.handlers[eventType] = make(map[uint64]service.AdEventHandler)
	}
	e.handlers[eventType][id] = handler

	return func() {
		e.mu.Lock()
		delete(e.handlers[eventType], id)
		e.mu.Unlock()
	}
}

// emit calls every handler registered for event.Type and reports whether any did.
func (e *emitter) emit(event entity.AdEvent) bool {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()

		return false
	}
	handlers := make([]service.AdEventHandler, 0, len(e.handlers[event.Type]))
	for _, handler := range e.handlers[event.Type] {
		handlers = append(handlers, handler)
	}
	e.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
	}

	return len(handlers) > 0
}

// destroy drops every handler. It returns false when already destroyed.
func (e *emitter) destroy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return false
	}
	e.destroyed = true
	e.handlers = nil

	return true
}

func (e *emitter) isDestroyed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.destroyed
}
