package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/buildscripts/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by name
type Registry[T any] interface {
	// Register adds an item to the registry. Names are unique: registering
	// an existing name fails with ErrAlreadyExists.
	Register(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Lookup retrieves an item without building an error for misses
	Lookup(name string) (T, bool)

	// Has checks if an item is registered
	Has(name string) bool

	// List returns all registered names in lexicographic order
	List() []string
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	r.items[name] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	item, ok := r.Lookup(name)
	if !ok {
		return item, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	return item, nil
}

func (r *registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	return item, ok
}

func (r *registry[T]) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// MustRegister registers an item and panics if registration fails.
// Catalog.MustRegister relies on it for compiled-in scripts.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
