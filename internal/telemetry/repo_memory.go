package telemetry

import (
	"sync"
	"time"
)

// DefaultCap bounds each stream so a long session cannot grow memory
// without limit.
const DefaultCap = 200

// Repository stores gameplay telemetry events.
type Repository interface {
	RecordEvent(at time.Time, eventType EventType, subject string, amount float64)
	GetEvents(since time.Time, eventTypes []EventType) []Event
	Clear()
}

// MemoryRepository keeps events in memory, capped per event type. When a
// stream exceeds its cap the oldest entries are dropped.
type MemoryRepository struct {
	mu      sync.RWMutex
	streams map[EventType][]Event
	cap     int
	nextID  int
}

func NewMemoryRepository() *MemoryRepository {
	return NewMemoryRepositoryCap(DefaultCap)
}

func NewMemoryRepositoryCap(cap int) *MemoryRepository {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &MemoryRepository{
		streams: make(map[EventType][]Event),
		cap:     cap,
		nextID:  1,
	}
}

func (r *MemoryRepository) RecordEvent(at time.Time, eventType EventType, subject string, amount float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := append(r.streams[eventType], Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: at,
		Subject:   subject,
		Amount:    amount,
	})
	r.nextID++
	if len(s) > r.cap {
		s = s[len(s)-r.cap:]
	}
	r.streams[eventType] = s
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := eventTypes
	if len(types) == 0 {
		types = make([]EventType, 0, len(r.streams))
		for t := range r.streams {
			types = append(types, t)
		}
	}

	result := make([]Event, 0)
	for _, t := range types {
		for _, ev := range r.streams[t] {
			if ev.Timestamp.Before(since) {
				continue
			}
			result = append(result, ev)
		}
	}
	return result
}

func (r *MemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streams = make(map[EventType][]Event)
	r.nextID = 1
}
