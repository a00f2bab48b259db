package utils

import (
	"sort"
	"sync"
)

// Registry is a generic, thread-safe key-value registry used as the base for
// specific registry types.
type Registry[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		items: make(map[K]V),
	}
}

// Register adds or replaces an item.
func (r *Registry[K, V]) Register(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = value
}

// Get retrieves an item.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, exists := r.items[key]
	return value, exists
}

// Has checks whether a key is registered.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.items[key]
	return exists
}

// Len returns the number of registered items.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// SortedKeys returns all keys in deterministic order.
func SortedKeys[V any](r *Registry[string, V]) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
