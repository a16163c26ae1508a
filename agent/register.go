package agent

import (
	"fmt"

	"github.com/hupe1980/agentgraph/blueprint"
	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/model"
	anthropicmodel "github.com/hupe1980/agentgraph/model/anthropic"
	openaimodel "github.com/hupe1980/agentgraph/model/openai"
	"github.com/hupe1980/agentgraph/tool"

	"github.com/anthropics/anthropic-sdk-go"
)

// init wires this package's agent types into the blueprint default registry,
// the startup-time replacement for import-by-name reconstruction.
func init() {
	blueprint.Register("function", newFunctionAgentFromConfig)
	blueprint.Register("model", newModelAgentFromConfig)
}

type functionAgentConfig struct {
	FuncName string `json:"func_name"`
}

func newFunctionAgentFromConfig(id string, cfg map[string]any) (core.Agent, error) {
	var c functionAgentConfig
	if err := blueprint.DecodeConfig(cfg, &c); err != nil {
		return nil, err
	}
	if c.FuncName == "" {
		return nil, fmt.Errorf("function agent config requires func_name")
	}
	return NewRegisteredFunctionAgent(id, c.FuncName)
}

type modelAgentConfig struct {
	Provider          string   `json:"provider"`
	Model             string   `json:"model"`
	SystemPrompt      string   `json:"system_prompt"`
	UserPrompt        string   `json:"user_prompt"`
	MaxToolIterations int      `json:"max_tool_iterations"`
	Tools             []string `json:"tools"`
}

func newModelAgentFromConfig(id string, cfg map[string]any) (core.Agent, error) {
	var c modelAgentConfig
	if err := blueprint.DecodeConfig(cfg, &c); err != nil {
		return nil, err
	}

	m, err := buildModel(c)
	if err != nil {
		return nil, err
	}

	var tools []tool.Tool
	for _, name := range c.Tools {
		t, ok := LookupTool(name)
		if !ok {
			return nil, fmt.Errorf("tool %q is not registered", name)
		}
		tools = append(tools, t)
	}

	return NewModelAgent(id, m, func(o *ModelAgentOptions) {
		o.SystemPrompt = c.SystemPrompt
		o.UserPrompt = c.UserPrompt
		if c.MaxToolIterations > 0 {
			o.MaxToolIterations = c.MaxToolIterations
		}
		if len(tools) > 0 {
			o.Tools = tool.NewCollection(tools...)
		}
	}), nil
}

func buildModel(c modelAgentConfig) (model.Model, error) {
	switch c.Provider {
	case "openai":
		return openaimodel.NewModel(func(o *openaimodel.Options) {
			if c.Model != "" {
				o.Model = c.Model
			}
		}), nil
	case "anthropic":
		return anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
			if c.Model != "" {
				o.Model = anthropic.Model(c.Model)
			}
		}), nil
	default:
		return nil, fmt.Errorf("unsupported model provider %q", c.Provider)
	}
}
