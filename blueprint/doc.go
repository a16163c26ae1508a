// Package blueprint serializes a graph definition to a portable document and
// reconstructs it again. The document enumerates agents (id, type tag,
// type-specific configuration) and a connection list of from/to pairs; both
// JSON and YAML encodings are supported.
//
// Reconstruction never bypasses the graph API: Decode registers every agent
// through graph.AddAgent and every edge through graph.AddConnection, so all
// construction-time validation (duplicate ids, unknown references, cycle
// rejection) applies to loaded documents exactly as it does to code-built
// graphs.
//
// Concrete agent types are resolved through a Registry mapping a type tag to
// a constructor. There is no dynamic symbol loading; packages that define
// agent implementations register their constructors at startup (the agent
// package does this for its types in an init function, mirroring how image
// codecs self-register in the standard library).
package blueprint
