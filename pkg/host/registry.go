package host

import (
	"sort"
	"sync"

	"github.com/go-drift/tether/pkg/errors"
)

// Definition is the type-erased view of a class that a registry stores.
// The binding engine's Class type implements it.
type Definition interface {
	// Tag returns the identifier the class is registered under.
	Tag() string
	// ObservedAttributes returns the attribute names instances observe.
	ObservedAttributes() []string
	// CreateAny constructs and initializes a new instance.
	CreateAny() any
	// ConnectAny delivers the attach notification to an instance.
	ConnectAny(instance any)
	// DisconnectAny delivers the detach notification to an instance.
	DisconnectAny(instance any)
	// AttributeChangedAny delivers an attribute-change notification to an
	// instance. Nil old or new means "attribute absent".
	AttributeChangedAny(instance any, name string, oldValue, newValue *string)
}

// Registry is the hosting runtime's type registry, keyed by tag.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// DefaultRegistry is the process-wide registry classes register with by
// default.
var DefaultRegistry = NewRegistry()

// Define registers def under its tag. Registering an empty or duplicate
// tag returns a *errors.ConfigError.
func (r *Registry) Define(def Definition) error {
	tag := def.Tag()
	if tag == "" {
		return &errors.ConfigError{Feature: "host.Registry", Reason: "empty tag"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[tag]; exists {
		return &errors.ConfigError{Tag: tag, Feature: "host.Registry", Reason: "tag already defined"}
	}
	r.defs[tag] = def
	return nil
}

// Lookup returns the definition registered under tag.
func (r *Registry) Lookup(tag string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[tag]
	return def, ok
}

// Create constructs a new instance of the class registered under tag.
func (r *Registry) Create(tag string) (any, bool) {
	def, ok := r.Lookup(tag)
	if !ok {
		return nil, false
	}
	return def.CreateAny(), true
}

// Tags returns all registered tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.defs))
	for tag := range r.defs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
