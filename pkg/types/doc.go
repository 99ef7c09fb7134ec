// Package types defines the data shared between the engine, the status
// store and build scripts: BuildRecord, ScriptDescriptor, DependencyEdge
// and Params.
package types
