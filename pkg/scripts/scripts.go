package scripts

import (
	"github.com/arthur-debert/buildscripts/pkg/script"
	"github.com/arthur-debert/buildscripts/pkg/types"
)

// Script names
const (
	SourceBuildName      = "test"
	EnvEchoName          = "test2"
	DependencyReportName = "test3"
)

// VersionVar is the global parameter scripts read their version from
const VersionVar = "version"

// NotProvided stands in for a missing version
const NotProvided = "Not provided"

type bundledScript struct {
	name string
	body script.ScriptFunc
	deps script.DependencyFunc
}

func bundled() []bundledScript {
	return []bundledScript{
		{name: SourceBuildName, body: SourceBuild},
		{name: EnvEchoName, body: EnvEcho},
		{name: DependencyReportName, body: DependencyReport, deps: DependencyReportDependencies},
	}
}

// Register adds the bundled scripts and their dependencies to c
func Register(c *script.Catalog) error {
	for _, b := range bundled() {
		if err := c.Register(b.name, b.body); err != nil {
			return err
		}
		if b.deps == nil {
			continue
		}
		if err := c.RegisterDependencies(b.name, b.deps); err != nil {
			return err
		}
	}
	return nil
}

// NewCatalog returns a catalog holding the bundled scripts
func NewCatalog() *script.Catalog {
	c := script.NewCatalog()
	for _, b := range bundled() {
		c.MustRegister(b.name, b.body, b.deps)
	}
	return c
}

// DependencyReportDependencies declares test and test2, each with its own
// parameters
func DependencyReportDependencies() []types.DependencyEdge {
	return []types.DependencyEdge{
		types.Edge(SourceBuildName, types.Params{"param1": "value1"}),
		types.Edge(EnvEchoName, types.Params{"paramA": "valueA"}),
	}
}
