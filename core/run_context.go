package core

import (
	"context"

	"github.com/hupe1980/agentgraph/logging"
)

// RunContext carries execution state & helpers for a single agent task.
// It aggregates:
//   - The ambient cancellation Context for the whole run
//   - Identifiers (RunID, AgentID)
//   - Scoped access to the run's Store (intermediary writes, output reads)
//   - Logging helpers
//
// The scheduler creates one RunContext per agent task. Agents must not hold
// on to it beyond the duration of their Run call.
type RunContext struct {
	Context context.Context
	RunID   string
	AgentID string

	store *Store

	*loggerAdapter
}

// NewRunContext constructs a RunContext bound to the given run store.
func NewRunContext(ctx context.Context, runID, agentID string, store *Store, logger logging.Logger) *RunContext {
	return &RunContext{
		Context:       ctx,
		RunID:         runID,
		AgentID:       agentID,
		store:         store,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (rc *RunContext) Done() <-chan struct{} { return rc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (rc *RunContext) Err() error { return rc.Context.Err() }

// RecordIntermediary appends an auxiliary trace record for the running agent.
// This is the only store write an agent performs itself; inputs and outputs
// are recorded by the scheduler.
func (rc *RunContext) RecordIntermediary(value any) {
	rc.store.RecordIntermediary(rc.AgentID, value)
}

// Output returns the recorded output of another agent in the same run.
// Parents of the running agent are guaranteed to have an output; any other
// agent may or may not have completed yet.
func (rc *RunContext) Output(agentID string) (any, bool) {
	return rc.store.Output(agentID)
}
