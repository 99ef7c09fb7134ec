// Package vcs materializes source repositories on disk.
//
// An Acquirer turns (repository URL, branch, target directory) into a
// checked-out tree. The git implementation clones when the target is
// absent, optionally pulls when it already exists, and switches to the
// requested branch after a fresh clone. Every git invocation goes through
// a Runner so callers and tests can substitute the process layer.
package vcs
