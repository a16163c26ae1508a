// Package history contains the optional cross-run retention mechanism. The
// graph core never persists anything between runs; when retention is wanted,
// the caller wires a history.Store into the AgentGraph facade, which appends
// one Record per completed run. The in-memory store below suits tests and
// single-process use; durable backends can implement Store without touching
// the core.
package history
