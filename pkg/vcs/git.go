package vcs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/logging"
	"github.com/rs/zerolog"
)

// Acquirer makes a repository available at a target directory
type Acquirer interface {
	Acquire(repositoryURL, branch, targetDir string, pullIfExists bool) (string, error)
}

// Runner runs git with the given arguments. An empty dir means the
// current working directory.
type Runner interface {
	Run(dir string, args ...string) error
}

// ExecRunner runs the git binary found on PATH
type ExecRunner struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewExecRunner creates a Runner backed by os/exec. When out is non-nil,
// git's own output is passed through to it as it runs.
func NewExecRunner(out io.Writer) *ExecRunner {
	return &ExecRunner{out: out, logger: logging.GetLogger("vcs.exec")}
}

// Run executes git and folds its stderr into the returned error
func (r *ExecRunner) Run(dir string, args ...string) error {
	logging.LogCommand(r.logger, "git", args)

	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.out != nil {
		cmd.Stdout = io.MultiWriter(&stdout, r.out)
		cmd.Stderr = io.MultiWriter(&stderr, r.out)
	}

	err := cmd.Run()
	if stdout.Len() > 0 {
		r.logger.Trace().Str("output", stdout.String()).Msg("git stdout")
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

// Options configures a Git acquirer
type Options struct {
	// Runner executes git; defaults to an ExecRunner
	Runner Runner

	// Out receives progress messages and, for the default runner, git's
	// output; nil keeps acquisition silent
	Out io.Writer

	// Logger for acquisition progress; defaults to the vcs component logger
	Logger *zerolog.Logger
}

// Git acquires repositories with the git command line
type Git struct {
	runner Runner
	out    io.Writer
	logger zerolog.Logger
}

// New creates a Git acquirer
func New(opts Options) *Git {
	g := &Git{runner: opts.Runner, out: opts.Out}
	if g.runner == nil {
		g.runner = NewExecRunner(opts.Out)
	}
	if opts.Logger != nil {
		g.logger = *opts.Logger
	} else {
		g.logger = logging.GetLogger("vcs")
	}
	return g
}

// Acquire makes repositoryURL available at targetDir and returns targetDir.
//
// An existing targetDir is pulled when pullIfExists is set and otherwise
// left untouched. An absent one is cloned; a non-empty branch is then
// checked out.
func (g *Git) Acquire(repositoryURL, branch, targetDir string, pullIfExists bool) (string, error) {
	logger := g.logger.With().
		Str("repo", repositoryURL).
		Str("branch", branch).
		Str("target", targetDir).
		Logger()

	_, statErr := os.Stat(targetDir)
	if statErr != nil && !os.IsNotExist(statErr) {
		return "", errors.Wrapf(statErr, errors.ErrInternal,
			"Cannot inspect target directory %s", targetDir).
			WithDetail("target", targetDir)
	}

	if statErr == nil {
		if !pullIfExists {
			logger.Info().Msg("Repository already present, skipping update")
			g.progress("Skipping pull; using existing directory: %s", targetDir)
			return targetDir, nil
		}

		logger.Info().Msg("Updating existing repository")
		g.progress("Pulling latest changes in directory: %s", targetDir)
		if err := g.runner.Run(targetDir, "pull"); err != nil {
			return "", errors.Wrapf(err, errors.ErrUpdateFailed,
				"Failed to pull updates in %s", targetDir).
				WithDetail("target", targetDir)
		}
		return targetDir, nil
	}

	logger.Info().Msg("Cloning repository")
	if branch != "" {
		g.progress("Cloning repo: %s (branch: %s)", repositoryURL, branch)
	} else {
		g.progress("Cloning repo: %s", repositoryURL)
	}
	if err := g.runner.Run("", "clone", repositoryURL, targetDir); err != nil {
		return "", errors.Wrapf(err, errors.ErrCloneFailed,
			"Failed to clone repository %s", repositoryURL).
			WithDetail("repo", repositoryURL).
			WithDetail("target", targetDir)
	}

	if branch != "" {
		logger.Debug().Msg("Checking out branch")
		if err := g.runner.Run(targetDir, "checkout", branch); err != nil {
			return "", errors.Wrapf(err, errors.ErrCheckoutFailed,
				"Failed to check out branch %s in %s", branch, targetDir).
				WithDetail("branch", branch).
				WithDetail("target", targetDir)
		}
	}

	return targetDir, nil
}

func (g *Git) progress(format string, args ...interface{}) {
	if g.out != nil {
		_, _ = fmt.Fprintf(g.out, format+"\n", args...)
	}
}
