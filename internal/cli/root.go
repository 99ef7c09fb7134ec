package cli

import (
	"fmt"

	"github.com/arthur-debert/buildscripts/internal/version"
	"github.com/arthur-debert/buildscripts/pkg/config"
	"github.com/arthur-debert/buildscripts/pkg/logging"
	"github.com/arthur-debert/buildscripts/pkg/script"
	"github.com/arthur-debert/buildscripts/pkg/scripts"
	"github.com/arthur-debert/buildscripts/pkg/vcs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps are the collaborators a run is assembled from. Nil fields get the
// production implementations.
type Deps struct {
	// Catalog defaults to the bundled scripts
	Catalog *script.Catalog

	// Repos defaults to the git acquirer
	Repos vcs.Acquirer

	// Shell defaults to a shell runner built from the loaded configuration
	Shell script.CommandRunner

	// LoadConfig defaults to config.Load
	LoadConfig func(paths ...string) (*config.Config, error)
}

type options struct {
	verbosity  int
	configPath string
	list       bool
	plan       bool
	report     string
}

// NewRootCmd creates the buildscripts command with production dependencies
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(Deps{})
}

// NewRootCmdWith creates the buildscripts command around deps
func NewRootCmdWith(deps Deps) *cobra.Command {
	if deps.Catalog == nil {
		deps.Catalog = scripts.NewCatalog()
	}
	if deps.LoadConfig == nil {
		deps.LoadConfig = config.Load
	}

	var opts options

	rootCmd := &cobra.Command{
		Use:     "buildscripts [script] [key==value ...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, opts, args)
		},
		ValidArgsFunction: completeArgs(deps.Catalog),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Version, version.Commit, version.Date))

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	flags.BoolVar(&opts.list, "list", false, MsgFlagList)
	flags.BoolVar(&opts.plan, "plan", false, MsgFlagPlan)
	flags.StringVar(&opts.report, "report", "", MsgFlagReport)
	rootCmd.MarkFlagsMutuallyExclusive("list", "plan")

	_ = rootCmd.MarkFlagFilename("config", "yml", "yaml", "toml")
	_ = rootCmd.MarkFlagFilename("report", "yaml", "yml", "toml", "json")

	return rootCmd
}

// completeArgs offers script names first and known parameters after
func completeArgs(catalog *script.Catalog) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
		}
		return []string{scripts.VersionVar + "=="}, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}
