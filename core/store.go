package core

import "sync"

// Store is the run-scoped record of everything a single execution produced,
// keyed by agent id. A fresh Store is created at the start of every run and
// returned to the caller with that run's results; nothing is retained across
// runs.
//
// Three kinds of entries exist per agent:
//   - inputs: ordered, append-only list of every value fed to the agent
//     (one per parent that produced an output, plus an optional entry seed)
//   - intermediary: ordered, append-only list of agent-defined auxiliary
//     records; purely diagnostic, never consulted for scheduling
//   - output: the single result recorded once the agent's Run returns
//
// Under the scheduling discipline each agent id is written by exactly one
// task, but outputs are read concurrently by every successor task, so all
// access is guarded by an RWMutex. Recorded values are shared by reference;
// treat them as immutable once recorded.
type Store struct {
	mu           sync.RWMutex
	runID        string
	inputs       map[string][]any
	intermediary map[string][]any
	outputs      map[string]any
}

// NewStore constructs an empty Store bound to the given run id.
func NewStore(runID string) *Store {
	return &Store{
		runID:        runID,
		inputs:       make(map[string][]any),
		intermediary: make(map[string][]any),
		outputs:      make(map[string]any),
	}
}

// RunID returns the identifier of the run this store belongs to.
func (s *Store) RunID() string { return s.runID }

// RecordInput appends a value to the agent's input list.
func (s *Store) RecordInput(agentID string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[agentID] = append(s.inputs[agentID], value)
}

// RecordOutput sets the agent's output. The scheduler calls this exactly once
// per agent per run; a second call overwrites the first.
func (s *Store) RecordOutput(agentID string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs[agentID] = value
}

// RecordIntermediary appends an auxiliary record for the agent. Agents may
// call this any number of times to leave trace data.
func (s *Store) RecordIntermediary(agentID string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intermediary[agentID] = append(s.intermediary[agentID], value)
}

// Inputs returns a copy of the agent's recorded input list.
func (s *Store) Inputs(agentID string) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]any(nil), s.inputs[agentID]...)
}

// Intermediary returns a copy of the agent's recorded intermediary list.
func (s *Store) Intermediary(agentID string) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]any(nil), s.intermediary[agentID]...)
}

// Output returns the agent's recorded output and whether one exists.
func (s *Store) Output(agentID string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.outputs[agentID]
	return v, ok
}

// Outputs returns a shallow copy of all recorded outputs keyed by agent id.
func (s *Store) Outputs() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]any, len(s.outputs))
	for k, v := range s.outputs {
		result[k] = v
	}
	return result
}
