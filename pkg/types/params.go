package types

import "sort"

// Params is a set of string parameters handed to a build script, either by a
// dependency edge or by the caller of the top-level execution.
type Params map[string]string

// Clone returns an independent copy. A nil receiver yields an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the parameter names in lexicographic order
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
