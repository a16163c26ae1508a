package graph

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/internal/util"
)

// completion is the message an agent task sends the dispatcher when it
// finishes, successfully or not.
type completion struct {
	id  string
	err error
}

// Run executes the graph once and returns the run's result store.
//
// Every agent with no parents starts immediately; seeds supplies an optional
// extra input per entry agent (keyed by agent id, looked up by presence, so a
// recorded nil seed still counts). Each remaining agent starts the instant
// its last pending parent completes. Input assembly per agent: the recorded
// output of every parent, in unspecified relative order, followed by the seed
// if the agent is a seeded entry agent.
//
// The first agent error cancels the run context and becomes the returned
// error, wrapped with the failing agent's id. Tasks already running observe
// the cancellation through their RunContext and finish on their own terms; no
// further successors are started. Outputs recorded before the failure remain
// readable in the returned store.
//
// Run allocates all scheduling state (store, countdowns) per call, so the
// same Graph can be run repeatedly and concurrently as long as construction
// has finished.
func (g *Graph) Run(ctx context.Context, seeds map[string]any) (*core.Store, error) {
	runID := util.NewID()
	store := core.NewStore(runID)

	if len(g.nodes) == 0 {
		return store, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Per-run readiness countdowns, seeded from the immutable parent counts.
	countdown := make(map[string]int, len(g.nodes))
	for id, n := range g.nodes {
		countdown[id] = len(n.parents)
	}

	completions := make(chan completion)

	inFlight := 0
	start := func(id string) {
		inFlight++
		seed, seeded := seeds[id]
		go g.runAgent(runCtx, runID, id, seed, seeded, store, completions)
	}

	g.logger.Info("run started", "run_id", runID, "agents", len(g.nodes))

	for id, remaining := range countdown {
		if remaining == 0 {
			start(id)
		}
	}

	var runErr error
	for inFlight > 0 {
		done := <-completions
		inFlight--

		if done.err != nil {
			if runErr == nil {
				runErr = fmt.Errorf("agent %q: %w", done.id, done.err)
				// Ask running siblings to stop; they are never killed.
				cancel()
			}
			continue
		}

		if runErr != nil {
			// The run already failed; completed work stays in the store but
			// no new tasks are dispatched.
			continue
		}

		for succ := range g.nodes[done.id].successors {
			countdown[succ]--
			if countdown[succ] == 0 {
				start(succ)
			}
		}
	}

	if runErr != nil {
		g.logger.Error("run failed", "run_id", runID, "error", runErr)
		return store, runErr
	}

	g.logger.Info("run completed", "run_id", runID)

	return store, nil
}

// runAgent is the body of one agent task. The output is recorded in the
// store before the completion message is sent, so a successor task (which is
// only spawned after that message is received) always observes every parent
// output. That happens-before relationship is structural and needs no lock
// beyond the store's own.
func (g *Graph) runAgent(
	ctx context.Context,
	runID, id string,
	seed any,
	seeded bool,
	store *core.Store,
	completions chan<- completion,
) {
	n := g.nodes[id]

	if err := ctx.Err(); err != nil {
		completions <- completion{id: id, err: err}
		return
	}

	inputs := make([]any, 0, len(n.parents)+1)
	for parentID := range n.parents {
		if out, ok := store.Output(parentID); ok {
			inputs = append(inputs, out)
		}
	}
	if seeded && len(n.parents) == 0 {
		inputs = append(inputs, seed)
	}

	for _, in := range inputs {
		store.RecordInput(id, in)
	}

	g.logger.Debug("agent starting", "run_id", runID, "agent_id", id, "inputs", len(inputs))

	runCtx := core.NewRunContext(ctx, runID, id, store, g.logger)

	out, err := n.agent.Run(runCtx, inputs)
	if err != nil {
		g.logger.Error("agent failed", "run_id", runID, "agent_id", id, "error", err)
		completions <- completion{id: id, err: err}
		return
	}

	store.RecordOutput(id, out)

	g.logger.Debug("agent completed", "run_id", runID, "agent_id", id)

	completions <- completion{id: id}
}
