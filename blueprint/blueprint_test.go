package blueprint_test

import (
	"context"
	"testing"

	"github.com/hupe1980/agentgraph/agent"
	"github.com/hupe1980/agentgraph/blueprint"
	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	agent.RegisterFunc("bp_test_one", func(*core.RunContext, []any) (any, error) {
		return 1, nil
	})
	agent.RegisterFunc("bp_test_two", func(*core.RunContext, []any) (any, error) {
		return 2, nil
	})
	agent.RegisterFunc("bp_test_sum", func(_ *core.RunContext, inputs []any) (any, error) {
		total := 0
		for _, in := range inputs {
			if n, ok := in.(int); ok {
				total += n
			}
		}
		return total, nil
	})
}

// buildSumGraph wires the A/B -> C fan-in pipeline from registered functions.
func buildSumGraph(t *testing.T) *graph.Graph {
	t.Helper()

	a, err := agent.NewRegisteredFunctionAgent("A", "bp_test_one")
	require.NoError(t, err)
	b, err := agent.NewRegisteredFunctionAgent("B", "bp_test_two")
	require.NoError(t, err)
	c, err := agent.NewRegisteredFunctionAgent("C", "bp_test_sum")
	require.NoError(t, err)

	g := graph.New()
	require.NoError(t, g.AddAgents(a, b, c))
	require.NoError(t, g.AddConnections([]string{"A", "B"}, []string{"C"}))

	return g
}

func TestEncode(t *testing.T) {
	g := buildSumGraph(t)

	doc, err := blueprint.Encode(g)
	require.NoError(t, err)

	require.Len(t, doc.Agents, 3)
	assert.Equal(t, "A", doc.Agents[0].ID)
	assert.Equal(t, "function", doc.Agents[0].Type)
	assert.True(t, doc.Agents[0].Entry)
	assert.Equal(t, map[string]any{"func_name": "bp_test_one"}, doc.Agents[0].Config)

	assert.Equal(t, "C", doc.Agents[2].ID)
	assert.False(t, doc.Agents[2].Entry)

	assert.Equal(t, []blueprint.Connection{
		{From: "A", To: "C"},
		{From: "B", To: "C"},
	}, doc.Connections)
}

func TestEncode_UnexportableAgent(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddAgent(agent.NewFunctionAgent("anon", func(*core.RunContext, []any) (any, error) {
		return nil, nil
	})))

	_, err := blueprint.Encode(g)
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	g := buildSumGraph(t)

	data, err := blueprint.EncodeJSON(g)
	require.NoError(t, err)

	rebuilt, err := blueprint.DecodeJSON(data, nil)
	require.NoError(t, err)

	store, err := rebuilt.Run(context.Background(), nil)
	require.NoError(t, err)

	out, ok := store.Output("C")
	require.True(t, ok)
	assert.Equal(t, 3, out)
	assert.ElementsMatch(t, []any{1, 2}, store.Inputs("C"))
}

func TestYAMLRoundTrip(t *testing.T) {
	g := buildSumGraph(t)

	data, err := blueprint.EncodeYAML(g)
	require.NoError(t, err)

	rebuilt, err := blueprint.DecodeYAML(data, nil)
	require.NoError(t, err)

	store, err := rebuilt.Run(context.Background(), nil)
	require.NoError(t, err)

	out, ok := store.Output("C")
	require.True(t, ok)
	assert.Equal(t, 3, out)
}

func TestDecode_UnknownType(t *testing.T) {
	doc := &blueprint.Document{
		Agents: []blueprint.AgentDef{{ID: "x", Type: "does_not_exist"}},
	}

	_, err := blueprint.Decode(doc, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist")
}

func TestDecode_ValidatesThroughGraphAPI(t *testing.T) {
	// A document carrying a cycle must be rejected by the regular
	// construction-time validation.
	doc := &blueprint.Document{
		Agents: []blueprint.AgentDef{
			{ID: "a", Type: "function", Config: map[string]any{"func_name": "bp_test_one"}},
			{ID: "b", Type: "function", Config: map[string]any{"func_name": "bp_test_two"}},
		},
		Connections: []blueprint.Connection{
			{From: "a", To: "b"},
			{From: "b", To: "a"},
		},
	}

	_, err := blueprint.Decode(doc, nil)
	assert.ErrorIs(t, err, graph.ErrCycleDetected)
}

func TestRegistry_DuplicateTag(t *testing.T) {
	reg := blueprint.NewRegistry()

	ctor := func(id string, cfg map[string]any) (core.Agent, error) { return nil, nil }
	require.NoError(t, reg.Register("custom", ctor))
	assert.Error(t, reg.Register("custom", ctor))
}

func TestDecodeConfig(t *testing.T) {
	var cfg struct {
		FuncName string `json:"func_name"`
		Retries  int    `json:"retries"`
	}

	err := blueprint.DecodeConfig(map[string]any{"func_name": "f", "retries": 3}, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "f", cfg.FuncName)
	assert.Equal(t, 3, cfg.Retries)
}
