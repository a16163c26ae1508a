package graph

import "errors"

var (
	// ErrDuplicateAgent is returned by AddAgent when the id is already registered.
	ErrDuplicateAgent = errors.New("agent id already registered")

	// ErrUnknownAgent is returned by AddConnection when either endpoint is not registered.
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrCycleDetected is returned by AddConnection when the new edge would make
	// the graph cyclic. The offending edge is rolled back before returning.
	ErrCycleDetected = errors.New("cycle detected: graph is not a valid DAG")
)
