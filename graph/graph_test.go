package graph

import (
	"testing"

	"github.com/hupe1980/agentgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAgent is a minimal core.Agent for registry and scheduling tests.
type stubAgent struct {
	id string
	fn func(runCtx *core.RunContext, inputs []any) (any, error)
}

func newStubAgent(id string, fn func(runCtx *core.RunContext, inputs []any) (any, error)) *stubAgent {
	if fn == nil {
		fn = func(*core.RunContext, []any) (any, error) { return id, nil }
	}
	return &stubAgent{id: id, fn: fn}
}

func (s *stubAgent) ID() string { return s.id }

func (s *stubAgent) Run(runCtx *core.RunContext, inputs []any) (any, error) {
	return s.fn(runCtx, inputs)
}

func TestGraph_AddAgent_Duplicate(t *testing.T) {
	g := New()

	require.NoError(t, g.AddAgent(newStubAgent("a", nil)))

	err := g.AddAgent(newStubAgent("a", nil))
	assert.ErrorIs(t, err, ErrDuplicateAgent)
}

func TestGraph_AddAgents(t *testing.T) {
	g := New()

	require.NoError(t, g.AddAgents(newStubAgent("a", nil), newStubAgent("b", nil)))
	assert.Equal(t, []string{"a", "b"}, g.AgentIDs())

	err := g.AddAgents(newStubAgent("c", nil), newStubAgent("a", nil))
	assert.ErrorIs(t, err, ErrDuplicateAgent)
}

func TestGraph_AddConnection_UnknownAgent(t *testing.T) {
	g := New()
	require.NoError(t, g.AddAgent(newStubAgent("a", nil)))

	assert.ErrorIs(t, g.AddConnection("a", "missing"), ErrUnknownAgent)
	assert.ErrorIs(t, g.AddConnection("missing", "a"), ErrUnknownAgent)
}

func TestGraph_AddConnection_DuplicateIsNoOp(t *testing.T) {
	g := New()
	require.NoError(t, g.AddAgents(newStubAgent("a", nil), newStubAgent("b", nil)))

	require.NoError(t, g.AddConnection("a", "b"))
	require.NoError(t, g.AddConnection("a", "b"))

	assert.Equal(t, []Edge{{From: "a", To: "b"}}, g.Edges())
	assert.Equal(t, 1, g.ParentCount("b"))
}

func TestGraph_AddConnection_SelfEdge(t *testing.T) {
	g := New()
	require.NoError(t, g.AddAgent(newStubAgent("a", nil)))

	err := g.AddConnection("a", "a")
	assert.ErrorIs(t, err, ErrCycleDetected)
	assert.Empty(t, g.Edges())
}

func TestGraph_AddConnection_CycleDetectedAndRolledBack(t *testing.T) {
	g := New()
	require.NoError(t, g.AddAgents(
		newStubAgent("a", nil),
		newStubAgent("b", nil),
		newStubAgent("c", nil),
	))

	require.NoError(t, g.AddConnection("a", "b"))
	require.NoError(t, g.AddConnection("b", "c"))

	// The closing edge of the cycle must fail the moment it is added.
	err := g.AddConnection("c", "a")
	assert.ErrorIs(t, err, ErrCycleDetected)

	// The offending edge must leave no trace behind.
	assert.Equal(t, []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}, g.Edges())
	assert.Equal(t, 0, g.ParentCount("a"))

	// The graph remains fully usable.
	require.NoError(t, g.AddAgent(newStubAgent("d", nil)))
	require.NoError(t, g.AddConnection("c", "d"))
}

func TestGraph_AddConnections_CrossProduct(t *testing.T) {
	g := New()
	require.NoError(t, g.AddAgents(
		newStubAgent("a", nil),
		newStubAgent("b", nil),
		newStubAgent("x", nil),
		newStubAgent("y", nil),
	))

	require.NoError(t, g.AddConnections([]string{"a", "b"}, []string{"x", "y"}))

	assert.Equal(t, []Edge{
		{From: "a", To: "x"},
		{From: "a", To: "y"},
		{From: "b", To: "x"},
		{From: "b", To: "y"},
	}, g.Edges())
	assert.Equal(t, 2, g.ParentCount("x"))
	assert.Equal(t, 2, g.ParentCount("y"))
}

func TestGraph_Agent(t *testing.T) {
	g := New()
	a := newStubAgent("a", nil)
	require.NoError(t, g.AddAgent(a))

	got, ok := g.Agent("a")
	assert.True(t, ok)
	assert.Same(t, a, got)

	_, ok = g.Agent("missing")
	assert.False(t, ok)
}
