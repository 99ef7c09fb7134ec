// Package engine runs scripts from a catalog together with their
// prerequisites.
//
// Execution is depth-first and sequential. Before a script's body runs,
// each declared dependency is executed, in declaration order, with the
// parameters its edge carries. The first failure stops everything and is
// returned unchanged. Dependencies reached through several paths run once
// per path. A script that reaches itself through its own dependencies is
// rejected with ErrCyclicDependency.
package engine
