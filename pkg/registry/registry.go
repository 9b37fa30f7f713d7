package registry

import (
	"fmt"
	"sync"

	"github.com/confhaus/confval/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by key
type Registry[K comparable, T any] interface {
	// Register adds an item to the registry
	Register(key K, item T) error

	// Get retrieves an item from the registry
	Get(key K) (T, error)

	// Remove removes an item from the registry
	Remove(key K) error

	// Keys returns all registered keys
	Keys() []K

	// Has checks if an item is registered
	Has(key K) bool

	// Clear removes all items from the registry
	Clear()

	// Count returns the number of registered items
	Count() int
}

// registry is the internal implementation of Registry
type registry[K comparable, T any] struct {
	mu    sync.RWMutex
	items map[K]T
}

// New creates a new Registry instance
func New[K comparable, T any]() Registry[K, T] {
	return &registry[K, T]{
		items: make(map[K]T),
	}
}

// Register adds an item to the registry
func (r *registry[K, T]) Register(key K, item T) error {
	var zero K
	if key == zero {
		return errors.New(errors.ErrInvalidInput, "registry key cannot be the zero value")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%v' is already registered", key)
	}

	r.items[key] = item
	return nil
}

// Get retrieves an item from the registry
func (r *registry[K, T]) Get(key K) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%v' not found in registry", key)
	}

	return item, nil
}

// Remove removes an item from the registry
func (r *registry[K, T]) Remove(key K) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%v' not found in registry", key)
	}

	delete(r.items, key)
	return nil
}

// Keys returns all registered keys in map order
func (r *registry[K, T]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}

	return keys
}

// Has checks if an item is registered
func (r *registry[K, T]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[key]
	return exists
}

// Clear removes all items from the registry
func (r *registry[K, T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[K]T)
}

// Count returns the number of registered items
func (r *registry[K, T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustRegister[K comparable, T any](reg Registry[K, T], key K, item T) {
	if err := reg.Register(key, item); err != nil {
		panic(fmt.Sprintf("failed to register %v: %v", key, err))
	}
}

// MustGet retrieves an item and panics if not found
// This is useful when the item must exist
func MustGet[K comparable, T any](reg Registry[K, T], key K) T {
	item, err := reg.Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to get %v: %v", key, err))
	}
	return item
}
