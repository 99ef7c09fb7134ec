// Package registry provides a generic, thread-safe name to item table.
// The script catalog keeps both build scripts and their dependency
// declarations in registries built once at startup.
package registry
