package types

// DefaultBranch is used when a script descriptor does not name a branch
const DefaultBranch = "master"

// ScriptDescriptor is the repository configuration for one script, loaded
// from the scripts configuration file.
type ScriptDescriptor struct {
	RepositoryURL string `koanf:"repo" json:"repo" yaml:"repo"`
	Branch        string `koanf:"branch" json:"branch,omitempty" yaml:"branch,omitempty"`
}

// BranchOrDefault returns the configured branch or DefaultBranch
func (d ScriptDescriptor) BranchOrDefault() string {
	if d.Branch == "" {
		return DefaultBranch
	}
	return d.Branch
}

// DependencyEdge names a prerequisite script and the parameters passed to it
type DependencyEdge struct {
	Name   string
	Params Params
}

// Edge is shorthand for building a DependencyEdge in declarations
func Edge(name string, params Params) DependencyEdge {
	return DependencyEdge{Name: name, Params: params}
}
