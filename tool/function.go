package tool

import "github.com/hupe1980/agentgraph/core"

// FunctionTool is a generic adapter that exposes a plain Go function as a tool.
//
// It holds a lightweight JSON-Schema-like parameter specification and invokes
// the wrapped function with the calling agent's *core.RunContext, giving the
// function access to cancellation, logging and intermediary trace recording.
//
// A FunctionTool has no internal mutable state after construction and is safe
// for concurrent use by multiple goroutines.
type FunctionTool struct {
	// Tool identifier (snake_case recommended)
	name string
	// Human-readable description shown to models
	description string
	// JSON schema describing accepted arguments
	parameters map[string]any
	// User supplied implementation
	fn func(runCtx *core.RunContext, args map[string]any) (any, error)
}

// NewFunctionTool constructs a FunctionTool from explicit schema and function.
//
// Example:
//
//	sumTool := tool.NewFunctionTool(
//	  "calculate_sum",
//	  "Calculate the sum of two numbers",
//	  map[string]any{
//	    "type": "object",
//	    "properties": map[string]any{
//	      "a": map[string]any{"type": "number"},
//	      "b": map[string]any{"type": "number"},
//	    },
//	    "required": []string{"a", "b"},
//	  },
//	  func(runCtx *core.RunContext, args map[string]any) (any, error) {
//	    return args["a"].(float64) + args["b"].(float64), nil
//	  },
//	)
func NewFunctionTool(
	name, description string,
	parameters map[string]any,
	fn func(runCtx *core.RunContext, args map[string]any) (any, error),
) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

// Name returns the unique tool name used in function call declarations and routing.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the tool description surfaced to models.
func (t *FunctionTool) Description() string { return t.description }

// Parameters returns the JSON schema for the tool arguments.
func (t *FunctionTool) Parameters() map[string]any { return t.parameters }

// Call executes the wrapped function. Errors that are not already *Error are
// wrapped with the EXECUTION_ERROR code for consistent handling upstream.
func (t *FunctionTool) Call(runCtx *core.RunContext, args map[string]any) (any, error) {
	result, err := t.fn(runCtx, args)
	if err != nil {
		if toolErr, ok := err.(*Error); ok {
			return nil, toolErr
		}
		return nil, NewError(t.name, err.Error(), "EXECUTION_ERROR")
	}
	return result, nil
}
