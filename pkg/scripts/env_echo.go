package scripts

import (
	"fmt"

	"github.com/arthur-debert/buildscripts/pkg/script"
	"github.com/arthur-debert/buildscripts/pkg/types"
)

// EnvEcho runs a build command with an injected variable. It keeps no
// sources and leaves its build record untouched.
func EnvEcho(ctx *script.Context, params types.Params) error {
	fmt.Fprintln(ctx.Out, "Executing build script for test2")
	printParams(ctx, params)

	if version, ok := ctx.Vars.Get(VersionVar); ok {
		fmt.Fprintf(ctx.Out, "Using version: %s\n", version)
	} else {
		fmt.Fprintln(ctx.Out, "Version parameter not provided")
	}

	return build(ctx, "echo $b", map[string]string{"b": "20"})
}
