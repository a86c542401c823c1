// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new Surface with the given canvas size.
type Factory func(width, height int) (Surface, error)

// DefaultBackend is the name of the built-in CPU backend.
const DefaultBackend = "image"

// ErrBackendNotFound is returned when no backend is registered under a name.
var ErrBackendNotFound = errors.New("surface: backend not found")

// Registry maps backend names to surface factories.
//
// Hosts that present the composite somewhere other than an in-memory
// image (a window, a terminal) register their own backend and select it
// by name from configuration.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Factory
}

// NewRegistry creates an empty registry.
// Most code should use the package-level Register and New.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Factory)}
}

var globalRegistry = NewRegistry()

// Register adds a backend to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, factory Factory) {
	globalRegistry.Register(name, factory)
}

// New creates a surface from the named backend in the global registry.
func New(name string, width, height int) (Surface, error) {
	return globalRegistry.New(name, width, height)
}

// List returns the names of all backends in the global registry.
func List() []string {
	return globalRegistry.List()
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = factory
}

// New creates a surface from the named backend.
func (r *Registry) New(name string, width, height int) (Surface, error) {
	if name == "" {
		name = DefaultBackend
	}
	r.mu.RLock()
	factory, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	return factory(width, height)
}

// List returns the registered backend names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// Is reports whether target is ErrBackendNotFound.
func (e *BackendNotFoundError) Is(target error) bool {
	return target == ErrBackendNotFound
}

func init() {
	Register(DefaultBackend, func(width, height int) (Surface, error) {
		return NewImageSurface(width, height), nil
	})
}
