// Package tool implements the function / tool calling subsystem that lets
// model-backed agents invoke structured capabilities (APIs, computations,
// side-effects) with schema-described arguments and consistent error handling.
package tool

import (
	"fmt"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/model"
)

// Tool defines the interface for extending agent capabilities with external functions.
//
// Tools are attached to model agents through a Collection to enable function
// calling, allowing agents to perform actions beyond text generation such as
// API calls, calculations or database queries.
//
// Tool implementations should:
//   - Provide clear, descriptive names and descriptions (snake_case recommended)
//   - Define proper JSON schema for parameters
//   - Be safe for concurrent use; the same tool instance may serve several
//     agent tasks of one run simultaneously
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool does.
	// It is provided to the model to help it decide when to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	Parameters() map[string]any

	// Call executes the tool with arguments parsed from the model's tool call.
	// The RunContext gives access to cancellation, logging and intermediary
	// trace recording for the calling agent.
	Call(runCtx *core.RunContext, args map[string]any) (any, error)
}

// Error represents a failure during tool lookup or execution.
type Error struct {
	Tool    string `json:"tool"`    // Name of the tool that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewError creates a new Error with the specified details.
func NewError(tool, message, code string) *Error {
	return &Error{Tool: tool, Message: message, Code: code}
}

// Collection is an immutable, ordered set of tools with name lookup.
type Collection struct {
	tools  []Tool
	byName map[string]Tool
}

// NewCollection builds a Collection from the given tools. A duplicated name
// keeps the first registration.
func NewCollection(tools ...Tool) *Collection {
	c := &Collection{byName: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if _, exists := c.byName[t.Name()]; exists {
			continue
		}
		c.tools = append(c.tools, t)
		c.byName[t.Name()] = t
	}
	return c
}

// Get returns the tool registered under name.
func (c *Collection) Get(name string) (Tool, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Len returns the number of tools in the collection.
func (c *Collection) Len() int { return len(c.tools) }

// Names returns the tool names in registration order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.tools))
	for i, t := range c.tools {
		names[i] = t.Name()
	}
	return names
}

// Definitions exposes the collection as model tool definitions.
func (c *Collection) Definitions() []model.ToolDefinition {
	defs := make([]model.ToolDefinition, len(c.tools))
	for i, t := range c.tools {
		defs[i] = model.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		}
	}
	return defs
}
