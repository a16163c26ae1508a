// Package graph implements the directed-acyclic-graph orchestration core of
// AgentGraph. A Graph owns the registered agents and the edge set, rejects
// edges that would introduce a cycle the moment they are added, and executes
// runs with dynamic concurrent scheduling: every agent task starts the
// instant its last pending parent completes, with no wave or barrier
// synchronization between independent branches.
//
// Construction and execution are strictly phased: register agents and
// connections first, then call Run. Mutating the graph while a run is active
// is not supported. A Graph may be run any number of times; all per-run state
// (the result store and the readiness countdowns) is allocated fresh inside
// each Run call.
package graph
