package agent

import (
	"fmt"
	"sync"

	"github.com/hupe1980/agentgraph/core"
)

// Func is the signature a FunctionAgent wraps: it receives the run context
// and the assembled inputs and returns the agent's single result.
type Func func(runCtx *core.RunContext, inputs []any) (any, error)

// funcRegistry maps persistable function names to implementations. Populated
// at startup via RegisterFunc; consulted when function agents are rebuilt
// from a blueprint document.
var funcRegistry = struct {
	sync.RWMutex
	m map[string]Func
}{m: make(map[string]Func)}

// RegisterFunc makes fn available under name for blueprint reconstruction.
// Registering the same name twice panics; call it from init or program setup.
func RegisterFunc(name string, fn Func) {
	funcRegistry.Lock()
	defer funcRegistry.Unlock()
	if _, exists := funcRegistry.m[name]; exists {
		panic(fmt.Sprintf("agent: function %q already registered", name))
	}
	funcRegistry.m[name] = fn
}

// LookupFunc returns the function registered under name.
func LookupFunc(name string) (Func, bool) {
	funcRegistry.RLock()
	defer funcRegistry.RUnlock()
	fn, ok := funcRegistry.m[name]
	return fn, ok
}

// FunctionAgent exposes a plain Go function as a graph node. It is the
// simplest way to add computation, routing or I/O to a pipeline.
type FunctionAgent struct {
	id       string
	funcName string
	fn       Func
}

// NewFunctionAgent wraps an anonymous function. The resulting agent is fully
// schedulable but cannot be exported to a blueprint document; use
// NewRegisteredFunctionAgent when persistence is needed.
func NewFunctionAgent(id string, fn Func) *FunctionAgent {
	return &FunctionAgent{id: id, fn: fn}
}

// NewRegisteredFunctionAgent wraps a function previously added with
// RegisterFunc, keeping the name so the agent round-trips through blueprints.
func NewRegisteredFunctionAgent(id, funcName string) (*FunctionAgent, error) {
	fn, ok := LookupFunc(funcName)
	if !ok {
		return nil, fmt.Errorf("agent: function %q is not registered", funcName)
	}
	return &FunctionAgent{id: id, funcName: funcName, fn: fn}, nil
}

// ID implements core.Agent.
func (a *FunctionAgent) ID() string { return a.id }

// Run implements core.Agent by delegating to the wrapped function.
func (a *FunctionAgent) Run(runCtx *core.RunContext, inputs []any) (any, error) {
	return a.fn(runCtx, inputs)
}

// BlueprintType implements blueprint.Exporter.
func (a *FunctionAgent) BlueprintType() string { return "function" }

// BlueprintConfig implements blueprint.Exporter. Agents wrapping anonymous
// functions cannot be persisted.
func (a *FunctionAgent) BlueprintConfig() (map[string]any, error) {
	if a.funcName == "" {
		return nil, fmt.Errorf("function agent wraps an unregistered function; register it with RegisterFunc")
	}
	return map[string]any{"func_name": a.funcName}, nil
}
