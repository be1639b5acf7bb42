package registry

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"github.com/specialistvlad/shadegrid/internal/descriptor"
)

// Registry holds all registered descriptors for a single application
// instance, in registration order.
type Registry struct {
	mu      sync.RWMutex
	order   []descriptor.Key
	entries map[descriptor.Key]descriptor.Descriptor
}

// New creates and initializes a new, empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[descriptor.Key]descriptor.Descriptor),
	}
}

// Register validates d and stores it under its key. It fails with
// ErrDuplicateKey if the key is already present, in which case the registry is
// left unchanged.
func (r *Registry) Register(d descriptor.Descriptor) (descriptor.Key, error) {
	key := d.Key()
	if err := d.Validate(); err != nil {
		return key, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return key, fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	slog.Debug("Registering descriptor.", "key", key.String(), "kind", d.Kind().String())
	r.entries[key] = d
	r.order = append(r.order, key)
	return key, nil
}

// Lookup returns the descriptor registered under key.
func (r *Registry) Lookup(key descriptor.Key) (descriptor.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return d, nil
}

// LookupFunction returns the function descriptor registered under key. A key
// that holds a different descriptor kind is reported as ErrNotFound.
func (r *Registry) LookupFunction(key descriptor.Key) (*descriptor.FunctionDescriptor, error) {
	d, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	fd, ok := d.(*descriptor.FunctionDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a function", ErrNotFound, key, d.Kind())
	}
	return fd, nil
}

// Enumerate returns the registered entries in insertion order. Each iteration
// works on a snapshot taken when it starts, so ranging twice over an unchanged
// registry yields the same sequence.
func (r *Registry) Enumerate() iter.Seq2[descriptor.Key, descriptor.Descriptor] {
	return func(yield func(descriptor.Key, descriptor.Descriptor) bool) {
		keys, descs := r.snapshot()
		for i, key := range keys {
			if !yield(key, descs[i]) {
				return
			}
		}
	}
}

func (r *Registry) snapshot() ([]descriptor.Key, []descriptor.Descriptor) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]descriptor.Key, len(r.order))
	copy(keys, r.order)
	descs := make([]descriptor.Descriptor, len(keys))
	for i, key := range keys {
		descs[i] = r.entries[key]
	}
	return keys, descs
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Reset removes every entry so the registry can be rebuilt. It waits for
// in-flight readers to release their snapshots.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	slog.Debug("Resetting registry.", "entries_dropped", len(r.order))
	r.order = nil
	r.entries = make(map[descriptor.Key]descriptor.Descriptor)
}
