package scripts

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/buildscripts/pkg/script"
	"github.com/arthur-debert/buildscripts/pkg/types"
)

// SourceBuild records its parameters and version, checks out the
// configured repository under the source root and runs the build command.
func SourceBuild(ctx *script.Context, params types.Params) error {
	out := ctx.Out
	fmt.Fprintln(out, "Executing build script for the test tool")
	printParams(ctx, params)

	version := ctx.Vars.GetOr(VersionVar, NotProvided)
	fmt.Fprintf(out, "Using version: %s\n", version)

	ctx.Update(func(rec *types.BuildRecord) {
		rec.MergeParameters(params)
		rec.Version = version
	})

	desc, err := ctx.Descriptor()
	if err != nil {
		return err
	}
	branch := desc.BranchOrDefault()
	fmt.Fprintf(out, "Git repository: %s\n", desc.RepositoryURL)
	fmt.Fprintf(out, "Branch: %s\n", branch)

	target := SourceDir(ctx.Config.SourceRoot, ctx.Name, version, branch)
	ctx.Update(func(rec *types.BuildRecord) {
		rec.SourceDirectory = target
	})

	ctx.Logger.Info().
		Str("repo", desc.RepositoryURL).
		Str("target", target).
		Bool("pull", ctx.Config.PullIfExists).
		Msg("Acquiring sources")
	if _, err := ctx.Repos.Acquire(desc.RepositoryURL, desc.Branch, target, ctx.Config.PullIfExists); err != nil {
		return err
	}

	return build(ctx, "echo $a", map[string]string{"a": "10"})
}

// SourceDir is where a script checks out sources:
// <root>/<script>_<version>_<branch>
func SourceDir(root, name, version, branch string) string {
	return filepath.Join(root, fmt.Sprintf("%s_%s_%s", name, version, branch))
}

func build(ctx *script.Context, command string, env map[string]string) error {
	if err := ctx.Shell.Run(command, env); err != nil {
		fmt.Fprintf(ctx.Out, "Build failed: %v\n", err)
		return err
	}
	fmt.Fprintln(ctx.Out, "Build successful")
	return nil
}

func printParams(ctx *script.Context, params types.Params) {
	for _, k := range params.Keys() {
		fmt.Fprintf(ctx.Out, "Additional parameter: %s = %s\n", k, params[k])
	}
}
