// Package script defines what a build script is and where scripts live.
//
// A Script is the body of one named build step. Its prerequisites are
// declared separately through a DependencyFunc so the engine can walk the
// dependency graph without running anything. Both are held by a Catalog,
// which the program fills explicitly at startup.
//
// Every invocation receives a Context carrying the shared stores and the
// side-effecting services (repository acquisition, command execution).
// Scripts never reach for process globals; tests substitute any of these.
package script
