// Package core defines the foundational contracts of AgentGraph: the Agent
// interface every unit of work implements, the run-scoped Store that records
// inputs, intermediary values and outputs per agent, and the RunContext handed
// to agents while they execute.
//
// The package deliberately contains no scheduling logic. The graph package
// owns registration, cycle validation and concurrent execution; concrete
// agent implementations live in the agent package. Keeping the contracts here
// avoids dependency cycles between those layers.
package core
