package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/buildscripts/pkg/config"
	"github.com/arthur-debert/buildscripts/pkg/engine"
	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/logging"
	"github.com/arthur-debert/buildscripts/pkg/report"
	"github.com/arthur-debert/buildscripts/pkg/script"
	"github.com/arthur-debert/buildscripts/pkg/shell"
	"github.com/arthur-debert/buildscripts/pkg/types"
	"github.com/arthur-debert/buildscripts/pkg/ui"
	"github.com/arthur-debert/buildscripts/pkg/vars"
	"github.com/arthur-debert/buildscripts/pkg/vcs"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, deps Deps, opts options, args []string) error {
	logger := logging.GetLogger("cli")

	paths := config.DefaultPaths()
	if opts.configPath != "" {
		paths = []string{opts.configPath}
	}
	cfg, err := deps.LoadConfig(paths...)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout(), ui.FormatAuto)

	if opts.list {
		printer.Markdown(renderList(deps.Catalog, cfg))
		return nil
	}

	globals := vars.New()
	if len(args) > 1 {
		globals.ParseArgs(args[1:])
	}

	repos := deps.Repos
	if repos == nil {
		repos = vcs.New(vcs.Options{Out: printer.Writer()})
	}
	runner := deps.Shell
	if runner == nil {
		runner = shell.New(shell.Options{
			Shell:   cfg.Shell,
			Timeout: cfg.CommandTimeout,
			Out:     printer.Writer(),
		})
	}

	eng := engine.New(engine.Options{
		Catalog: deps.Catalog,
		Vars:    globals,
		Config:  cfg,
		Repos:   repos,
		Shell:   runner,
		Printer: printer,
	})

	if opts.plan {
		if len(args) == 0 {
			return errors.New(errors.ErrInvalidInput, MsgErrPlanNeedsScript)
		}
		order, err := eng.Plan(args[0])
		if err != nil {
			return err
		}
		for i, name := range order {
			printer.Printf(MsgPlanItem, i+1, name)
		}
		return nil
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = selectScript(cmd.InOrStdin(), printer, deps.Catalog.Names())
		if err != nil || name == "" {
			return err
		}
	}

	logger.Info().
		Str("script", name).
		Strs("globals", globals.Keys()).
		Str("config", cfg.Path).
		Msg("Running script")
	runErr := eng.Execute(name, types.Params{})

	if opts.report != "" {
		if err := writeReport(printer, opts.report, eng.Status().Snapshot()); err != nil {
			if runErr != nil {
				logger.Error().Err(err).Msg("Failed to write status report")
				return runErr
			}
			return err
		}
	}
	return runErr
}

// selectScript shows the menu and reads a 1-based choice. An empty name
// with a nil error means there was nothing to choose from.
func selectScript(in io.Reader, printer *ui.Printer, names []string) (string, error) {
	if len(names) == 0 {
		printer.Println(MsgNoScripts)
		return "", nil
	}

	printer.Menu(names)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, errors.ErrInvalidSelection, "failed to read selection")
	}
	input := strings.TrimSpace(line)

	choice, convErr := strconv.Atoi(input)
	if convErr != nil || choice < 1 || choice > len(names) {
		printer.Println()
		printer.Println(MsgInvalidSelection)
		return "", errors.Newf(errors.ErrInvalidSelection, "Invalid selection: %q", input).
			WithDetail("choices", len(names))
	}

	name := names[choice-1]
	printer.Println()
	printer.Printf(MsgExecutingScript, name)
	return name, nil
}

func writeReport(printer *ui.Printer, path string, snapshot map[string]types.BuildRecord) error {
	r := report.New(snapshot)
	if path == MsgReportToStdout {
		table, err := r.Table()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to render status table")
		}
		printer.Println(table)
		return nil
	}

	if err := r.WriteFile(path); err != nil {
		return err
	}
	printer.Muted(fmt.Sprintf(MsgReportWritten, path))
	return nil
}

func renderList(catalog *script.Catalog, cfg *config.Config) string {
	var b strings.Builder
	b.WriteString(MsgListTitle)
	for _, name := range catalog.Names() {
		fmt.Fprintf(&b, MsgListScript, name)
		if desc, ok := cfg.Scripts[name]; ok {
			fmt.Fprintf(&b, MsgListRepo, desc.RepositoryURL)
			fmt.Fprintf(&b, MsgListBranch, desc.BranchOrDefault())
		} else {
			b.WriteString(MsgListUnconfigured)
		}

		deps := catalog.Dependencies(name)
		if len(deps) == 0 {
			b.WriteString(MsgListNoDeps)
		} else {
			names := make([]string, 0, len(deps))
			for _, d := range deps {
				names = append(names, d.Name)
			}
			fmt.Fprintf(&b, MsgListDeps, strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
