package script

import (
	"github.com/arthur-debert/buildscripts/pkg/registry"
	"github.com/arthur-debert/buildscripts/pkg/types"
)

// Catalog holds the scripts and their dependency declarations
type Catalog struct {
	scripts      registry.Registry[Script]
	dependencies registry.Registry[DependencyFunc]
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		scripts:      registry.New[Script](),
		dependencies: registry.New[DependencyFunc](),
	}
}

// Register adds a script body under name
func (c *Catalog) Register(name string, s Script) error {
	return c.scripts.Register(name, s)
}

// RegisterFunc adds a plain function as a script body
func (c *Catalog) RegisterFunc(name string, fn func(ctx *Context, params types.Params) error) error {
	return c.Register(name, ScriptFunc(fn))
}

// RegisterDependencies declares the prerequisites of name
func (c *Catalog) RegisterDependencies(name string, fn DependencyFunc) error {
	return c.dependencies.Register(name, fn)
}

// MustRegister adds a script body and, when deps is non-nil, its
// dependencies. It panics on a registration error.
func (c *Catalog) MustRegister(name string, s Script, deps DependencyFunc) {
	registry.MustRegister(c.scripts, name, s)
	if deps != nil {
		registry.MustRegister(c.dependencies, name, deps)
	}
}

// Script returns the body registered under name
func (c *Catalog) Script(name string) (Script, bool) {
	return c.scripts.Lookup(name)
}

// Dependencies returns the prerequisites of name. A script without a
// declaration has none.
func (c *Catalog) Dependencies(name string) []types.DependencyEdge {
	fn, ok := c.dependencies.Lookup(name)
	if !ok || fn == nil {
		return nil
	}
	return fn()
}

// Has reports whether a script body is registered under name
func (c *Catalog) Has(name string) bool {
	return c.scripts.Has(name)
}

// Names returns the registered script names in lexicographic order
func (c *Catalog) Names() []string {
	return c.scripts.List()
}
