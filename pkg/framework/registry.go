package framework

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps framework tags to plugins. Registration happens during
// process wiring; lookups happen on every agent validation and every
// dispatch, so reads take the cheap path.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds a plugin under its own Name. Registering a second
// plugin with the same tag is a wiring bug and returns an error.
func (r *Registry) Register(p Plugin) error {
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin has an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}
	r.plugins[name] = p
	return nil
}

// Get returns the plugin for a framework tag, or
// ErrUnsupportedFramework when none is registered.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFramework, name)
	}
	return p, nil
}

// Names returns the registered framework tags, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
