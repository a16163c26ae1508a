package core

// Agent is the unit of work scheduled by a graph.
//
// Agents are registered under a unique identifier and connected into a
// directed acyclic graph. During a run each agent executes exactly once, as
// soon as every one of its parents has produced an output. The scheduler
// assembles the ordered input list from the recorded parent outputs (plus an
// optional caller-supplied seed for entry agents) and records the returned
// result as the agent's output.
//
// Implementations must:
//   - Return exactly one result value (or an error) per invocation
//   - Respect cancellation signalled through the RunContext
//   - Leave output bookkeeping to the scheduler; RecordIntermediary on the
//     RunContext is the only store write an agent performs itself
type Agent interface {
	// ID returns the unique identifier the agent is registered under.
	ID() string

	// Run executes the agent against the assembled inputs and returns its
	// single result. The relative order of inputs originating from different
	// parents is unspecified.
	Run(runCtx *RunContext, inputs []any) (any, error)
}
