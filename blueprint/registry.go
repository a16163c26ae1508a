package blueprint

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hupe1980/agentgraph/core"
)

// Constructor builds a concrete agent from its id and decoded configuration.
type Constructor func(id string, cfg map[string]any) (core.Agent, error)

// Registry maps agent type tags to constructors. The zero value is not
// usable; create instances with NewRegistry. All methods are safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor for the given type tag. Registering a tag twice
// fails so accidental collisions between agent-defining packages surface early.
func (r *Registry) Register(typeTag string, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ctors[typeTag]; exists {
		return fmt.Errorf("agent type %q already registered", typeTag)
	}
	r.ctors[typeTag] = ctor
	return nil
}

// Lookup returns the constructor for a type tag.
func (r *Registry) Lookup(typeTag string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[typeTag]
	return ctor, ok
}

// defaultRegistry backs the package-level Register/Lookup used by
// agent-defining packages at startup.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry populated by init-time
// registrations.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a constructor to the default registry, panicking on a
// duplicate tag. Intended for init-time use by agent-defining packages.
func Register(typeTag string, ctor Constructor) {
	if err := defaultRegistry.Register(typeTag, ctor); err != nil {
		panic(err)
	}
}

// DecodeConfig converts a decoded configuration map into a typed struct via a
// JSON round trip. Constructors use this to avoid hand-written map plumbing.
func DecodeConfig(cfg map[string]any, out any) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}
