// Package status holds the build records scripts use to tell each other
// what they produced: a resolved version, a checked-out source directory
// and the parameters they were invoked with.
//
// A Store is constructed once per process and handed to the execution
// engine, which passes it to every script body. All access goes through a
// single mutex. Callbacks given to WithRecord run with that mutex held and
// must not clone repositories or run commands; do the I/O after the
// callback returns.
package status
