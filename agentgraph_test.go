package agentgraph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/agentgraph"
	"github.com/hupe1980/agentgraph/agent"
	"github.com/hupe1980/agentgraph/blueprint"
	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumFunc(_ *core.RunContext, inputs []any) (any, error) {
	total := 0
	for _, in := range inputs {
		if n, ok := in.(int); ok {
			total += n
		}
	}
	return total, nil
}

func TestAgentGraph_Run(t *testing.T) {
	ag := agentgraph.New()

	require.NoError(t, ag.AddAgents(
		agent.NewFunctionAgent("A", func(*core.RunContext, []any) (any, error) { return 1, nil }),
		agent.NewFunctionAgent("B", func(*core.RunContext, []any) (any, error) { return 2, nil }),
		agent.NewFunctionAgent("C", sumFunc),
	))
	require.NoError(t, ag.AddConnections([]string{"A", "B"}, []string{"C"}))

	store, err := ag.Run(context.Background(), nil)
	require.NoError(t, err)

	out, ok := store.Output("C")
	require.True(t, ok)
	assert.Equal(t, 3, out)
	assert.ElementsMatch(t, []any{1, 2}, store.Inputs("C"))
}

func TestAgentGraph_RunWithHistory(t *testing.T) {
	hist := history.NewInMemoryStore()
	ag := agentgraph.New(func(o *agentgraph.Options) {
		o.History = hist
	})

	require.NoError(t, ag.AddAgent(
		agent.NewFunctionAgent("echo", func(_ *core.RunContext, inputs []any) (any, error) {
			return inputs[0], nil
		}),
	))

	store, err := ag.Run(context.Background(), map[string]any{"echo": "hello"})
	require.NoError(t, err)

	rec, ok := hist.Get(store.RunID())
	require.True(t, ok)
	assert.Equal(t, map[string]any{"echo": "hello"}, rec.Outputs)
	assert.NoError(t, rec.Err)
	assert.False(t, rec.FinishedAt.IsZero())
}

func TestAgentGraph_RunWithHistory_Failure(t *testing.T) {
	hist := history.NewInMemoryStore()
	ag := agentgraph.New(func(o *agentgraph.Options) {
		o.History = hist
	})

	errBoom := errors.New("boom")
	require.NoError(t, ag.AddAgent(
		agent.NewFunctionAgent("failing", func(*core.RunContext, []any) (any, error) {
			return nil, errBoom
		}),
	))

	store, err := ag.Run(context.Background(), nil)
	require.Error(t, err)

	rec, ok := hist.Get(store.RunID())
	require.True(t, ok)
	assert.ErrorIs(t, rec.Err, errBoom)
}

func TestAgentGraph_BlueprintExport(t *testing.T) {
	agent.RegisterFunc("facade_test_noop", func(*core.RunContext, []any) (any, error) {
		return nil, nil
	})

	ag := agentgraph.New()
	a, err := agent.NewRegisteredFunctionAgent("noop", "facade_test_noop")
	require.NoError(t, err)
	require.NoError(t, ag.AddAgent(a))

	doc, err := blueprint.Encode(ag.Graph())
	require.NoError(t, err)
	require.Len(t, doc.Agents, 1)
	assert.Equal(t, "noop", doc.Agents[0].ID)
}
