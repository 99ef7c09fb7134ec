package script

import (
	"io"

	"github.com/arthur-debert/buildscripts/pkg/config"
	"github.com/arthur-debert/buildscripts/pkg/status"
	"github.com/arthur-debert/buildscripts/pkg/types"
	"github.com/arthur-debert/buildscripts/pkg/vars"
	"github.com/arthur-debert/buildscripts/pkg/vcs"
	"github.com/rs/zerolog"
)

// Script is the body of a named build step
type Script interface {
	Run(ctx *Context, params types.Params) error
}

// ScriptFunc adapts a plain function to Script
type ScriptFunc func(ctx *Context, params types.Params) error

// Run calls f
func (f ScriptFunc) Run(ctx *Context, params types.Params) error {
	return f(ctx, params)
}

// DependencyFunc lists the prerequisites of a script in execution order
type DependencyFunc func() []types.DependencyEdge

// CommandRunner runs a shell command with extra environment variables
type CommandRunner interface {
	Run(command string, env map[string]string) error
}

// Context is what a script sees during one invocation
type Context struct {
	// Name of the running script; the record it owns in Status
	Name string

	Status *status.Store
	Vars   *vars.Store
	Config *config.Config

	Repos vcs.Acquirer
	Shell CommandRunner

	Logger zerolog.Logger

	// Out receives user-facing output
	Out io.Writer
}

// Update applies fn to the running script's own build record
func (c *Context) Update(fn func(rec *types.BuildRecord)) {
	c.Status.WithRecord(c.Name, fn)
}

// Record returns a copy of another script's build record
func (c *Context) Record(name string) (types.BuildRecord, bool) {
	return c.Status.ReadRecord(name)
}

// Descriptor returns the repository configuration of the running script
func (c *Context) Descriptor() (types.ScriptDescriptor, error) {
	return c.Config.Descriptor(c.Name)
}
