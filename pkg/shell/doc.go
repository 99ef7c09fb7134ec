// Package shell runs build commands through a system shell with extra
// environment variables injected on top of the process environment.
package shell
