package engine

import (
	"os"
	"strings"

	"github.com/arthur-debert/buildscripts/pkg/config"
	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/logging"
	"github.com/arthur-debert/buildscripts/pkg/script"
	"github.com/arthur-debert/buildscripts/pkg/status"
	"github.com/arthur-debert/buildscripts/pkg/types"
	"github.com/arthur-debert/buildscripts/pkg/ui"
	"github.com/arthur-debert/buildscripts/pkg/vars"
	"github.com/arthur-debert/buildscripts/pkg/vcs"
	"github.com/rs/zerolog"
)

// Options contains the collaborators handed to every script invocation
type Options struct {
	Catalog *script.Catalog
	Status  *status.Store
	Vars    *vars.Store
	Config  *config.Config

	Repos vcs.Acquirer
	Shell script.CommandRunner

	// Printer receives progress markers; defaults to stdout
	Printer *ui.Printer

	Logger *zerolog.Logger
}

// Engine executes scripts. An Engine runs one script tree at a time.
type Engine struct {
	catalog *script.Catalog
	status  *status.Store
	vars    *vars.Store
	config  *config.Config
	repos   vcs.Acquirer
	shell   script.CommandRunner
	printer *ui.Printer
	logger  zerolog.Logger

	// names currently being executed, outermost first
	active []string
}

// New creates an engine. Missing stores are created empty.
func New(opts Options) *Engine {
	e := &Engine{
		catalog: opts.Catalog,
		status:  opts.Status,
		vars:    opts.Vars,
		config:  opts.Config,
		repos:   opts.Repos,
		shell:   opts.Shell,
		printer: opts.Printer,
	}
	if e.catalog == nil {
		e.catalog = script.NewCatalog()
	}
	if e.status == nil {
		e.status = status.NewStore()
	}
	if e.vars == nil {
		e.vars = vars.New()
	}
	if e.config == nil {
		e.config = &config.Config{}
	}
	if e.printer == nil {
		e.printer = ui.NewPrinter(os.Stdout, ui.FormatAuto)
	}
	if opts.Logger != nil {
		e.logger = *opts.Logger
	} else {
		e.logger = logging.GetLogger("engine")
	}
	return e
}

// Status returns the store shared by all invocations
func (e *Engine) Status() *status.Store {
	return e.status
}

// Execute runs name after all of its dependencies. Errors from
// dependencies and script bodies are returned as they were produced.
func (e *Engine) Execute(name string, params types.Params) error {
	done := logging.LogOperationStart(e.logger, "execute "+name)
	defer done()

	e.active = e.active[:0]
	return e.execute(name, params)
}

func (e *Engine) execute(name string, params types.Params) error {
	if err := e.enter(name); err != nil {
		return err
	}
	defer e.leave()

	deps := e.catalog.Dependencies(name)
	for _, dep := range deps {
		e.logger.Debug().
			Str("script", name).
			Str("dependency", dep.Name).
			Strs("params", dep.Params.Keys()).
			Msg("Running dependency")
		if err := e.execute(dep.Name, dep.Params.Clone()); err != nil {
			return err
		}
	}

	s, ok := e.catalog.Script(name)
	if !ok {
		return unknownScript(name)
	}

	e.printer.Start(name)
	if err := s.Run(e.context(name), params.Clone()); err != nil {
		e.logger.Debug().Err(err).Str("script", name).Msg("Script failed")
		return err
	}
	e.printer.Done(name)
	return nil
}

// Plan returns the order in which Execute would run script bodies for
// name, without running anything.
func (e *Engine) Plan(name string) ([]string, error) {
	e.active = e.active[:0]
	var order []string
	if err := e.plan(name, &order); err != nil {
		return nil, err
	}
	return order, nil
}

func (e *Engine) plan(name string, order *[]string) error {
	if err := e.enter(name); err != nil {
		return err
	}
	defer e.leave()

	for _, dep := range e.catalog.Dependencies(name) {
		if err := e.plan(dep.Name, order); err != nil {
			return err
		}
	}
	if !e.catalog.Has(name) {
		return unknownScript(name)
	}
	*order = append(*order, name)
	return nil
}

func (e *Engine) enter(name string) error {
	for i, active := range e.active {
		if active == name {
			path := append(append([]string{}, e.active[i:]...), name)
			return errors.Newf(errors.ErrCyclicDependency,
				"Cyclic dependency: %s", strings.Join(path, " -> ")).
				WithDetail("path", path)
		}
	}
	e.active = append(e.active, name)
	return nil
}

func (e *Engine) leave() {
	e.active = e.active[:len(e.active)-1]
}

func (e *Engine) context(name string) *script.Context {
	return &script.Context{
		Name:   name,
		Status: e.status,
		Vars:   e.vars,
		Config: e.config,
		Repos:  e.repos,
		Shell:  e.shell,
		Logger: e.logger.With().Str("script", name).Logger(),
		Out:    e.printer.Writer(),
	}
}

func unknownScript(name string) error {
	return errors.Newf(errors.ErrUnknownScript, "Unknown script: %s", name).
		WithDetail("script", name)
}
