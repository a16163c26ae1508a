// Package agentgraph provides a high-level façade over the graph orchestration
// core, enabling rapid construction of concurrent multi-agent pipelines. Most
// applications interact with this package by:
//  1. Creating an AgentGraph via New() (optionally wiring a logger and a
//     run-history store)
//  2. Registering agents (function, model, custom) and declaring connections
//  3. Executing runs with Run() and reading results from the returned store
//
// The façade delegates registration, cycle validation and scheduling to
// graph.Graph while keeping setup and usage ergonomics concise. All defaults
// are safe for local development and testing.
package agentgraph

import (
	"context"
	"time"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/graph"
	"github.com/hupe1980/agentgraph/history"
	"github.com/hupe1980/agentgraph/logging"
)

// Options configures the AgentGraph instance.
type Options struct {
	// Logger receives scheduling and agent diagnostics (defaults to NoOp logger).
	Logger logging.Logger

	// History, when set, receives one record per completed run. The core
	// itself retains nothing across runs.
	History history.Store
}

// AgentGraph is the high-level façade aggregating the underlying graph and
// optional services.
type AgentGraph struct {
	opts  Options
	graph *graph.Graph
}

// New creates a new AgentGraph instance with optional overrides.
func New(optFns ...func(o *Options)) *AgentGraph {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	g := graph.New(func(o *graph.Options) {
		o.Logger = opts.Logger
	})

	return &AgentGraph{opts: opts, graph: g}
}

// Graph exposes the underlying graph, e.g. for blueprint export.
func (ag *AgentGraph) Graph() *graph.Graph { return ag.graph }

// AddAgent registers an agent with the underlying graph.
func (ag *AgentGraph) AddAgent(a core.Agent) error { return ag.graph.AddAgent(a) }

// AddAgents registers multiple agents, stopping at the first failure.
func (ag *AgentGraph) AddAgents(agents ...core.Agent) error { return ag.graph.AddAgents(agents...) }

// AddConnection declares the directed edge from -> to.
func (ag *AgentGraph) AddConnection(fromID, toID string) error {
	return ag.graph.AddConnection(fromID, toID)
}

// AddConnections declares the full cross-product of edges fromIDs x toIDs.
func (ag *AgentGraph) AddConnections(fromIDs, toIDs []string) error {
	return ag.graph.AddConnections(fromIDs, toIDs)
}

// Run executes the graph once with the given entry seeds and returns the
// run's result store. When a history store is configured, the run outcome is
// appended to it whether the run succeeded or failed.
func (ag *AgentGraph) Run(ctx context.Context, seeds map[string]any) (*core.Store, error) {
	store, err := ag.graph.Run(ctx, seeds)

	if ag.opts.History != nil {
		ag.opts.History.Append(history.Record{
			RunID:      store.RunID(),
			Outputs:    store.Outputs(),
			Err:        err,
			FinishedAt: time.Now(),
		})
	}

	return store, err
}
