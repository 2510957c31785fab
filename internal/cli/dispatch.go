// Package cli parses command lines and dispatches them to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

// PublisherFactory creates a Publisher from config.
// Used to inject the Google Tasks backend during dispatch.
type PublisherFactory func(ctx context.Context, cfg *config.Config) (service.Publisher, error)

// Dispatcher handles command-line parsing and dispatch for one session.
type Dispatcher struct {
	registry *commands.Registry
	session  *commands.Session
	factory  PublisherFactory

	skipPreflight bool
}

// NewDispatcher creates a dispatcher running commands against sess.
// The dispatcher becomes the session's Runner so the shell can reuse it.
func NewDispatcher(registry *commands.Registry, sess *commands.Session, factory PublisherFactory) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		session:  sess,
		factory:  factory,
	}
	sess.Runner = d
	return d
}

// SkipPreflight disables the credential file checks before publisher
// creation, for factories that need no files (tests).
func (d *Dispatcher) SkipPreflight() {
	d.skipPreflight = true
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args runs the walkthrough
	if len(args) == 0 {
		return d.dispatch(ctx, "demo", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command in front of them
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		return reportFlagError(errOut, err)
	}

	// A leftover dash argument was meant as a flag
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && positionalArgs[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	// Shell lines inherit the common flags given to the shell
	if base := d.session.ShellConfig(); base != nil {
		if configDir == "" {
			configDir = base.Dir
		}
		quiet = quiet || base.Quiet
		debug = debug || base.Debug
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = cfg.Debug || debug
	cfg.SetLogOutput(errOut)
	cfg.Debugf("session %s: %s", d.session.ID, strings.TrimSpace(cmd.Name()+" "+strings.Join(positionalArgs, " ")))

	var pub service.Publisher
	if cmd.NeedsAuth() {
		if code, ok := d.preflight(cfg, errOut); !ok {
			return code
		}
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: backend error: no publisher configured")
			return exitcode.BackendError
		}
		pub, err = d.factory(ctx, cfg)
		if err != nil {
			if errors.Is(err, service.ErrAuth) {
				fmt.Fprintf(errOut, "error: auth error: %s\n", err)
				return exitcode.AuthError
			}
			fmt.Fprintf(errOut, "error: backend error: %s\n", err)
			return exitcode.BackendError
		}
	}

	return cmd.Run(ctx, cfg, d.session, pub, positionalArgs, out, errOut)
}

// preflight checks the credential files the Google backend reads.
func (d *Dispatcher) preflight(cfg *config.Config, errOut io.Writer) (int, bool) {
	if d.skipPreflight {
		return exitcode.Success, true
	}
	if !cfg.HasOAuthClient() {
		fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
		return exitcode.AuthError, false
	}
	if !cfg.HasToken() {
		fmt.Fprintln(errOut, "error: not logged in (run: todo login)")
		return exitcode.AuthError, false
	}
	return exitcode.Success, true
}

// reportFlagError prints a flag parse error in the CLI's error format.
func reportFlagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	switch {
	case strings.HasPrefix(errStr, "flag needs an argument:"):
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
	case strings.HasPrefix(errStr, "flag provided but not defined:"):
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
	default:
		fmt.Fprintf(errOut, "error: %s\n", errStr)
	}
	return exitcode.UserError
}
