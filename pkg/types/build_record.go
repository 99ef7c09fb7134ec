package types

// BuildRecord is the mutable per-script state shared through the status
// store. Every script may read any record but only writes its own.
type BuildRecord struct {
	// Version is the last version string observed for the script; empty means unset.
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`

	// ExtraParameters accumulates the parameters seen across invocations.
	ExtraParameters map[string]string `json:"extra_parameters,omitempty" yaml:"extra_parameters,omitempty" toml:"extra_parameters,omitempty"`

	// SourceDirectory is where the script's source tree was materialized; empty means unset.
	SourceDirectory string `json:"source_directory,omitempty" yaml:"source_directory,omitempty" toml:"source_directory,omitempty"`
}

// NewBuildRecord returns the zero-valued record handed out on first access
func NewBuildRecord() *BuildRecord {
	return &BuildRecord{ExtraParameters: make(map[string]string)}
}

// MergeParameters records every entry of params, overwriting existing keys
func (r *BuildRecord) MergeParameters(params Params) {
	if r.ExtraParameters == nil {
		r.ExtraParameters = make(map[string]string, len(params))
	}
	for k, v := range params {
		r.ExtraParameters[k] = v
	}
}

// Clone returns a deep copy safe to hand out after the store lock is released
func (r BuildRecord) Clone() BuildRecord {
	out := r
	out.ExtraParameters = make(map[string]string, len(r.ExtraParameters))
	for k, v := range r.ExtraParameters {
		out.ExtraParameters[k] = v
	}
	return out
}

// IsZero reports whether nothing has been recorded yet
func (r BuildRecord) IsZero() bool {
	return r.Version == "" && r.SourceDirectory == "" && len(r.ExtraParameters) == 0
}
