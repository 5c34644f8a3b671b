package gpu

import (
	"errors"
	"sync"
)

// ErrNoRasterizer is returned when no rasterizer backend is registered.
var ErrNoRasterizer = errors.New("gpu: no rasterizer backend available")

// Factory creates a new rasterizer instance.
type Factory func() Rasterizer

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{"softpipe"}
)

// Register registers a rasterizer factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// Get returns a new rasterizer by backend name, or nil if the backend is
// not registered.
func Get(name string) Rasterizer {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns a rasterizer from the best available backend based on
// priority, or an error if nothing is registered.
func Default() (Rasterizer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if r := factory(); r != nil {
				return r, nil
			}
		}
	}

	// Fallback: first available.
	for _, factory := range backends {
		if r := factory(); r != nil {
			return r, nil
		}
	}

	return nil, ErrNoRasterizer
}
