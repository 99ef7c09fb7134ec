package shell

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/logging"
	"github.com/rs/zerolog"
)

// Result holds the captured outcome of one command
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success reports whether the command exited with status zero
func (r Result) Success() bool {
	return r.Err == nil
}

// Options configures a Runner
type Options struct {
	// Shell is the interpreter invoked with -c. Empty selects bash, or sh
	// when bash is not on PATH.
	Shell string

	// Timeout bounds each command; zero means no limit
	Timeout time.Duration

	// Out receives the success report of Run; defaults to os.Stdout
	Out io.Writer

	// Logger defaults to the shell component logger
	Logger *zerolog.Logger
}

// Runner executes shell commands with an injected environment
type Runner struct {
	shell   string
	timeout time.Duration
	out     io.Writer
	logger  zerolog.Logger
}

// New creates a Runner
func New(opts Options) *Runner {
	r := &Runner{
		shell:   opts.Shell,
		timeout: opts.Timeout,
		out:     opts.Out,
	}
	if r.shell == "" {
		r.shell = DefaultShell()
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if opts.Logger != nil {
		r.logger = *opts.Logger
	} else {
		r.logger = logging.GetLogger("shell")
	}
	return r
}

// DefaultShell returns bash when it is on PATH and sh otherwise
func DefaultShell() string {
	if _, err := exec.LookPath("bash"); err == nil {
		return "bash"
	}
	return "sh"
}

// Shell returns the interpreter this runner invokes
func (r *Runner) Shell() string {
	return r.shell
}

// Run executes command and reports its stdout on success. A non-zero exit
// yields ErrCommandFailed carrying the command's stderr.
func (r *Runner) Run(command string, env map[string]string) error {
	res := r.RunWithResult(command, env)
	if res.Err != nil {
		return res.Err
	}

	_, _ = fmt.Fprintf(r.out, "Command executed successfully: %s\n", strings.TrimRight(res.Stdout, "\n"))
	return nil
}

// RunWithResult executes command and returns its captured output
func (r *Runner) RunWithResult(command string, env map[string]string) Result {
	logging.LogCommand(r.logger, r.shell, []string{"-c", command})

	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Env = append(os.Environ(), Environ(env)...)
	if r.timeout > 0 {
		// children of the shell may keep the output pipes open after a kill
		cmd.WaitDelay = time.Second
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if stdout.Len() > 0 {
		r.logger.Debug().Str("output", res.Stdout).Msg("Command stdout")
	}
	if stderr.Len() > 0 {
		r.logger.Debug().Str("output", res.Stderr).Msg("Command stderr")
	}

	if err == nil {
		r.logger.Info().Str("command", command).Msg("Command executed successfully")
		return res
	}

	res.ExitCode = -1
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	}

	msg := strings.TrimSpace(res.Stderr)
	switch {
	case ctx.Err() == context.DeadlineExceeded:
		msg = fmt.Sprintf("command timed out after %s", r.timeout)
	case msg == "":
		msg = fmt.Sprintf("command exited with status %d", res.ExitCode)
	}

	r.logger.Error().
		Err(err).
		Str("command", command).
		Int("exitCode", res.ExitCode).
		Str("stderr", res.Stderr).
		Msg("Command execution failed")

	res.Err = errors.New(errors.ErrCommandFailed, msg).
		WithDetail("command", command).
		WithDetail("exit_code", res.ExitCode).
		WithDetail("stdout", res.Stdout)
	return res
}

// Environ renders env as KEY=VALUE entries in key order. Appended after
// os.Environ, these entries take precedence over inherited values.
func Environ(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
