// Package scripts holds the build scripts shipped with the binary.
//
//   - test checks out its configured repository under the source root and
//     builds it.
//   - test2 runs a standalone build step that needs no sources.
//   - test3 depends on both and reports what they recorded.
//
// Register adds all of them to a catalog.
package scripts
