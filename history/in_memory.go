package history

import (
	"sync"
	"time"
)

// Record is the retained summary of one completed run.
type Record struct {
	RunID      string
	Outputs    map[string]any
	Err        error
	FinishedAt time.Time
}

// Store retains run records. Implementations must be safe for concurrent use.
type Store interface {
	// Append adds a record for a completed run.
	Append(rec Record)

	// Get returns the record for a run id.
	Get(runID string) (Record, bool)

	// List returns all records in append order.
	List() []Record
}

// InMemoryStore is a volatile Store keeping records in a process-local slice.
// Suited for tests and ephemeral use. Returned records share the stored
// output values by reference; treat them as immutable.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []Record
	byRunID map[string]int
}

// NewInMemoryStore constructs an empty in-memory history store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byRunID: make(map[string]int)}
}

// Append implements Store.
func (s *InMemoryStore) Append(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRunID[rec.RunID] = len(s.records)
	s.records = append(s.records, rec)
}

// Get implements Store.
func (s *InMemoryStore) Get(runID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byRunID[runID]
	if !ok {
		return Record{}, false
	}
	return s.records[idx], true
}

// List implements Store.
func (s *InMemoryStore) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.records...)
}
