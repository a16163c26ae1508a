package graph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/logging"
)

// node bundles a registered agent with its derived edge views. The parent
// count is implicit (len(parents)) and fixed once construction ends; per-run
// countdowns are allocated inside Run.
type node struct {
	agent      core.Agent
	successors map[string]struct{}
	parents    map[string]struct{}
}

// Edge is an ordered producer/consumer pair between two registered agents.
type Edge struct {
	From string
	To   string
}

// Options holds configuration overrides passed to New().
type Options struct {
	// Logger receives scheduling diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Graph is the registry of agents and connections plus the run scheduler.
// Registration methods are safe for concurrent use with each other, but all
// registration must complete before the first call to Run.
type Graph struct {
	mu     sync.Mutex
	nodes  map[string]*node
	logger logging.Logger
}

// New constructs an empty Graph with optional overrides.
func New(optFns ...func(o *Options)) *Graph {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Graph{
		nodes:  make(map[string]*node),
		logger: opts.Logger,
	}
}

// AddAgent registers an agent under its id. Registering the same id twice
// fails with ErrDuplicateAgent. Agents are never removed once added.
func (g *Graph) AddAgent(a core.Agent) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := a.ID()
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAgent, id)
	}

	g.nodes[id] = &node{
		agent:      a,
		successors: make(map[string]struct{}),
		parents:    make(map[string]struct{}),
	}

	g.logger.Debug("agent registered", "agent_id", id)

	return nil
}

// AddAgents registers multiple agents, stopping at the first failure.
func (g *Graph) AddAgents(agents ...core.Agent) error {
	for _, a := range agents {
		if err := g.AddAgent(a); err != nil {
			return err
		}
	}
	return nil
}

// AddConnection adds the directed edge from -> to. Both endpoints must be
// registered (ErrUnknownAgent). A duplicate edge is a no-op. The full graph
// is re-validated after the insertion; if the edge closes a cycle it is
// removed again and ErrCycleDetected is returned, leaving the graph exactly
// as it was before the call.
func (g *Graph) AddConnection(fromID, toID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAgent, fromID)
	}
	to, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAgent, toID)
	}

	if _, exists := from.successors[toID]; exists {
		return nil
	}

	// Commit, validate, roll back on failure. A self-edge is a cycle of
	// length one and is rejected by the same check.
	from.successors[toID] = struct{}{}
	to.parents[fromID] = struct{}{}

	if err := g.validateAcyclicLocked(); err != nil {
		delete(from.successors, toID)
		delete(to.parents, fromID)
		return fmt.Errorf("connection %q -> %q: %w", fromID, toID, err)
	}

	g.logger.Debug("connection added", "from", fromID, "to", toID)

	return nil
}

// AddConnections adds the full cross-product of edges fromIDs x toIDs, one at
// a time via AddConnection, stopping at the first failure.
func (g *Graph) AddConnections(fromIDs, toIDs []string) error {
	for _, f := range fromIDs {
		for _, t := range toIDs {
			if err := g.AddConnection(f, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateAcyclicLocked runs Kahn's algorithm over a snapshot of the parent
// counts. If fewer nodes are visited than are registered, at least one cycle
// exists. The check runs in full after every edge insertion; graphs describe
// pipeline topology (defined once, small), so the cost is acceptable.
func (g *Graph) validateAcyclicLocked() error {
	remaining := make(map[string]int, len(g.nodes))
	queue := make([]string, 0, len(g.nodes))

	for id, n := range g.nodes {
		remaining[id] = len(n.parents)
		if len(n.parents) == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++

		for succ := range g.nodes[id].successors {
			remaining[succ]--
			if remaining[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if visited < len(g.nodes) {
		return ErrCycleDetected
	}

	return nil
}

// Agent returns the registered agent for the given id.
func (g *Graph) Agent(id string) (core.Agent, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	return n.agent, true
}

// AgentIDs returns all registered ids in lexical order.
func (g *Graph) AgentIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ParentCount returns the number of parents of the given agent. Entry agents
// have a parent count of zero.
func (g *Graph) ParentCount(id string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return 0
	}
	return len(n.parents)
}

// Edges returns every connection ordered by (From, To).
func (g *Graph) Edges() []Edge {
	g.mu.Lock()
	defer g.mu.Unlock()
	var edges []Edge
	for id, n := range g.nodes {
		for succ := range n.successors {
			edges = append(edges, Edge{From: id, To: succ})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
