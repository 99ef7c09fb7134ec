package scripts

import (
	"fmt"

	"github.com/arthur-debert/buildscripts/pkg/script"
	"github.com/arthur-debert/buildscripts/pkg/types"
)

// DependencyReport prints each dependency with the parameters it was
// given and what it recorded in the status store.
func DependencyReport(ctx *script.Context, params types.Params) error {
	out := ctx.Out
	fmt.Fprintln(out, "Executing build script for test3")

	version, ok := ctx.Vars.Get(VersionVar)
	if !ok {
		fmt.Fprintln(out, "Version parameter not provided")
		version = NotProvided
	}
	fmt.Fprintf(out, "Using version: %s\n", version)
	printParams(ctx, params)

	for _, dep := range DependencyReportDependencies() {
		fmt.Fprintf(out, "Dependency: %s\n", dep.Name)
		for _, k := range dep.Params.Keys() {
			fmt.Fprintf(out, "  %s = %s\n", k, dep.Params[k])
		}

		rec, ok := ctx.Record(dep.Name)
		if !ok {
			fmt.Fprintf(out, "  No status found for dependency: %s\n", dep.Name)
			continue
		}
		if rec.Version != "" {
			fmt.Fprintf(out, "  Dependency version: %s\n", rec.Version)
		}
		if rec.SourceDirectory != "" {
			fmt.Fprintf(out, "  Dependency source directory: %s\n", rec.SourceDirectory)
		}
		for _, k := range types.Params(rec.ExtraParameters).Keys() {
			fmt.Fprintf(out, "  %s = %s\n", k, rec.ExtraParameters[k])
		}
	}
	return nil
}
