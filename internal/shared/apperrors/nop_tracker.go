package apperrors

import (
	"net/http"
	"sync"
)

type NopTracker struct{}

func NewNopTracker() *NopTracker {
	return &NopTracker{}
}

func (t NopTracker) Track(level Level, errorText string, ctx map[string]interface{}) {
}

func (t NopTracker) WithHTTPRequest(r *http.Request) Tracker {
	return t
}

type TrackedEvent struct {
	Level   Level
	Text    string
	Context map[string]interface{}
}

// MemoryTracker keeps tracked events in memory, tests use it to check what was reported.
type MemoryTracker struct {
	mu     sync.Mutex
	events []TrackedEvent
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{}
}

func (t *MemoryTracker) Track(level Level, errorText string, ctx map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, TrackedEvent{Level: level, Text: errorText, Context: ctx})
}

func (t *MemoryTracker) WithHTTPRequest(r *http.Request) Tracker {
	return t
}

func (t *MemoryTracker) Events() []TrackedEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]TrackedEvent(nil), t.events...)
}
