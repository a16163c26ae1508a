// Package agent contains first-class agent implementations for AgentGraph
// nodes. Two concrete types cover the common cases:
//
//   - FunctionAgent wraps a plain Go function, making arbitrary computation a
//     graph node
//   - ModelAgent drives a chat model (see the model package) with prompt
//     templates and an optional bounded tool-calling loop
//
// Both types implement blueprint.Exporter and register their constructors
// with the blueprint default registry at init time, so graphs built from them
// round-trip through the blueprint document format. Because Go has no
// import-by-name, persisted function agents and tools reference entries in
// the package-level name registries (RegisterFunc, RegisterTool) that the
// embedding program populates at startup.
package agent
