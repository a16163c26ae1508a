package agent

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/internal/util"
	"github.com/hupe1980/agentgraph/model"
	"github.com/hupe1980/agentgraph/tool"
)

// toolRegistry maps persistable tool names to instances, mirroring
// funcRegistry for tools attached to persisted model agents.
var toolRegistry = struct {
	sync.RWMutex
	m map[string]tool.Tool
}{m: make(map[string]tool.Tool)}

// RegisterTool makes t available for blueprint reconstruction under its name.
// Registering the same name twice panics; call it from init or program setup.
func RegisterTool(t tool.Tool) {
	toolRegistry.Lock()
	defer toolRegistry.Unlock()
	if _, exists := toolRegistry.m[t.Name()]; exists {
		panic(fmt.Sprintf("agent: tool %q already registered", t.Name()))
	}
	toolRegistry.m[t.Name()] = t
}

// LookupTool returns the tool registered under name.
func LookupTool(name string) (tool.Tool, bool) {
	toolRegistry.RLock()
	defer toolRegistry.RUnlock()
	t, ok := toolRegistry.m[name]
	return t, ok
}

// ModelAgentOptions configures a ModelAgent.
type ModelAgentOptions struct {
	// SystemPrompt is prepended verbatim as the system message when non-empty.
	SystemPrompt string

	// UserPrompt is a text/template rendered against the merged inputs. Map
	// inputs contribute their keys to the template data; the full input list
	// is available as {{.Inputs}}. When empty, the inputs themselves are
	// formatted into the user message.
	UserPrompt string

	// Tools are exposed to the model for function calling.
	Tools *tool.Collection

	// MaxToolIterations bounds the generate/execute-tools loop.
	MaxToolIterations int
}

// ModelAgent drives a chat model as a graph node. Each run renders its
// prompts from the assembled inputs, generates a completion, resolves any
// tool calls through the attached collection (recording every round of tool
// results as intermediary trace data) and returns the final assistant text
// as the agent's output.
type ModelAgent struct {
	id    string
	model model.Model
	opts  ModelAgentOptions
}

// NewModelAgent creates a ModelAgent with optional overrides.
func NewModelAgent(id string, m model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	opts := ModelAgentOptions{
		MaxToolIterations: 3,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ModelAgent{id: id, model: m, opts: opts}
}

// ID implements core.Agent.
func (a *ModelAgent) ID() string { return a.id }

// Run implements core.Agent.
func (a *ModelAgent) Run(runCtx *core.RunContext, inputs []any) (any, error) {
	messages, err := a.buildMessages(inputs)
	if err != nil {
		return nil, err
	}

	req := model.Request{Messages: messages}
	if a.opts.Tools != nil && a.opts.Tools.Len() > 0 {
		req.Tools = a.opts.Tools.Definitions()
	}

	for iter := 0; iter < a.opts.MaxToolIterations; iter++ {
		resp, err := a.model.Generate(runCtx.Context, req)
		if err != nil {
			return nil, fmt.Errorf("model generate: %w", err)
		}

		if len(resp.ToolCalls) == 0 {
			return resp.Content, nil
		}

		req.Messages = append(req.Messages, model.Message{
			Role:      model.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		results, err := a.invokeToolCalls(runCtx, resp.ToolCalls)
		if err != nil {
			return nil, err
		}
		runCtx.RecordIntermediary(results)

		for _, r := range results {
			req.Messages = append(req.Messages, model.Message{
				Role:       model.RoleTool,
				Content:    fmt.Sprintf("%v", r.Output),
				ToolCallID: r.CallID,
			})
		}
	}

	return nil, fmt.Errorf("tool call limit reached after %d iterations", a.opts.MaxToolIterations)
}

// ToolResult captures one resolved tool call; slices of these are recorded as
// intermediary trace data per loop round.
type ToolResult struct {
	CallID string `json:"call_id"`
	Name   string `json:"name"`
	Output any    `json:"output"`
}

// invokeToolCalls resolves every call of one assistant turn against the
// attached collection. An unknown tool name fails the agent.
func (a *ModelAgent) invokeToolCalls(runCtx *core.RunContext, calls []model.ToolCall) ([]ToolResult, error) {
	results := make([]ToolResult, 0, len(calls))

	for _, call := range calls {
		var t tool.Tool
		if a.opts.Tools != nil {
			t, _ = a.opts.Tools.Get(call.Name)
		}
		if t == nil {
			return nil, tool.NewError(call.Name, "model requested a tool that is not attached", "UNKNOWN_TOOL")
		}

		args := map[string]any{}
		if len(call.Arguments) > 0 {
			if err := json.Unmarshal(call.Arguments, &args); err != nil {
				return nil, tool.NewError(call.Name, fmt.Sprintf("invalid arguments: %v", err), "VALIDATION_ERROR")
			}
		}

		runCtx.LogDebug("invoking tool", "agent_id", a.id, "tool", call.Name)

		out, err := t.Call(runCtx, args)
		if err != nil {
			return nil, err
		}

		results = append(results, ToolResult{CallID: call.ID, Name: call.Name, Output: out})
	}

	return results, nil
}

// buildMessages renders the configured prompts against the inputs. Map inputs
// are merged into the template data; later inputs win on key collisions.
func (a *ModelAgent) buildMessages(inputs []any) ([]model.Message, error) {
	var messages []model.Message

	if a.opts.SystemPrompt != "" {
		messages = append(messages, model.Message{Role: model.RoleSystem, Content: a.opts.SystemPrompt})
	}

	switch {
	case a.opts.UserPrompt != "":
		state := map[string]any{"Inputs": inputs}
		for _, in := range inputs {
			if m, ok := in.(map[string]any); ok {
				for k, v := range m {
					state[k] = v
				}
			}
		}
		rendered, err := util.RenderTemplate(a.opts.UserPrompt, state)
		if err != nil {
			return nil, fmt.Errorf("render user prompt: %w", err)
		}
		messages = append(messages, model.Message{Role: model.RoleUser, Content: rendered})
	case len(inputs) > 0:
		parts := make([]string, len(inputs))
		for i, in := range inputs {
			parts[i] = fmt.Sprintf("%v", in)
		}
		messages = append(messages, model.Message{Role: model.RoleUser, Content: strings.Join(parts, "\n")})
	default:
		messages = append(messages, model.Message{Role: model.RoleUser, Content: ""})
	}

	return messages, nil
}

// BlueprintType implements blueprint.Exporter.
func (a *ModelAgent) BlueprintType() string { return "model" }

// BlueprintConfig implements blueprint.Exporter. Attached tools are persisted
// by name and must be present in the tool registry on load.
func (a *ModelAgent) BlueprintConfig() (map[string]any, error) {
	info := a.model.Info()
	cfg := map[string]any{
		"provider":            info.Provider,
		"model":               info.Name,
		"max_tool_iterations": a.opts.MaxToolIterations,
	}
	if a.opts.SystemPrompt != "" {
		cfg["system_prompt"] = a.opts.SystemPrompt
	}
	if a.opts.UserPrompt != "" {
		cfg["user_prompt"] = a.opts.UserPrompt
	}
	if a.opts.Tools != nil && a.opts.Tools.Len() > 0 {
		cfg["tools"] = a.opts.Tools.Names()
	}
	return cfg, nil
}
