// Package model defines the provider-neutral chat model abstraction used by
// model-backed agents. It normalizes messages, tool definitions and tool
// calls so agent logic needs no per-vendor branching; concrete adapters for
// OpenAI and Anthropic live in the subpackages model/openai and
// model/anthropic. MockModel provides deterministic scripted responses for
// tests and examples.
package model
