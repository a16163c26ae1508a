package blueprint

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/agentgraph/graph"
	"gopkg.in/yaml.v3"
)

// Exporter is implemented by agents that can describe themselves in a
// Document. Agents without it can still be scheduled but make their graph
// non-exportable.
type Exporter interface {
	// BlueprintType returns the type tag resolved through a Registry on load.
	BlueprintType() string

	// BlueprintConfig returns the type-specific configuration to persist.
	BlueprintConfig() (map[string]any, error)
}

// AgentDef is the persisted description of one registered agent.
type AgentDef struct {
	ID     string         `json:"agent_id" yaml:"agent_id"`
	Type   string         `json:"type" yaml:"type"`
	Entry  bool           `json:"is_entry_point" yaml:"is_entry_point"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// Connection is a persisted directed edge.
type Connection struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Document is the portable form of a graph definition.
type Document struct {
	Agents      []AgentDef   `json:"agents" yaml:"agents"`
	Connections []Connection `json:"connections" yaml:"connections"`
}

// Encode walks the graph and produces its Document. Every agent must
// implement Exporter. Agents are emitted in lexical id order and connections
// in (from, to) order, so equal graphs encode to equal documents. The entry
// flag is informational (derived from the parent count); Decode recomputes it
// from the connection list.
func Encode(g *graph.Graph) (*Document, error) {
	doc := &Document{}

	for _, id := range g.AgentIDs() {
		a, _ := g.Agent(id)
		exp, ok := a.(Exporter)
		if !ok {
			return nil, fmt.Errorf("agent %q (%T) does not support blueprint export", id, a)
		}
		cfg, err := exp.BlueprintConfig()
		if err != nil {
			return nil, fmt.Errorf("agent %q: %w", id, err)
		}
		doc.Agents = append(doc.Agents, AgentDef{
			ID:     id,
			Type:   exp.BlueprintType(),
			Entry:  g.ParentCount(id) == 0,
			Config: cfg,
		})
	}

	for _, e := range g.Edges() {
		doc.Connections = append(doc.Connections, Connection{From: e.From, To: e.To})
	}

	return doc, nil
}

// Decode reconstructs a graph from its Document using the given registry
// (DefaultRegistry when nil). All agents and connections pass through the
// regular graph API, so construction-time validation applies unchanged.
func Decode(doc *Document, reg *Registry, optFns ...func(o *graph.Options)) (*graph.Graph, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	g := graph.New(optFns...)

	for _, def := range doc.Agents {
		ctor, ok := reg.Lookup(def.Type)
		if !ok {
			return nil, fmt.Errorf("unsupported agent type %q for agent %q", def.Type, def.ID)
		}
		a, err := ctor(def.ID, def.Config)
		if err != nil {
			return nil, fmt.Errorf("agent %q: %w", def.ID, err)
		}
		if err := g.AddAgent(a); err != nil {
			return nil, err
		}
	}

	for _, c := range doc.Connections {
		if err := g.AddConnection(c.From, c.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// EncodeJSON renders the graph as an indented JSON document.
func EncodeJSON(g *graph.Graph) ([]byte, error) {
	doc, err := Encode(g)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeJSON reconstructs a graph from JSON produced by EncodeJSON.
func DecodeJSON(data []byte, reg *Registry, optFns ...func(o *graph.Options)) (*graph.Graph, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse blueprint json: %w", err)
	}
	return Decode(&doc, reg, optFns...)
}

// EncodeYAML renders the graph as a YAML document.
func EncodeYAML(g *graph.Graph) ([]byte, error) {
	doc, err := Encode(g)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// DecodeYAML reconstructs a graph from YAML produced by EncodeYAML.
func DecodeYAML(data []byte, reg *Registry, optFns ...func(o *graph.Options)) (*graph.Graph, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse blueprint yaml: %w", err)
	}
	return Decode(&doc, reg, optFns...)
}
