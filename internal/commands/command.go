// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/google/uuid"

	"todo/internal/config"
	"todo/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command talks to Google Tasks.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided. sess is the task list of this process.
	// pub is nil if NeedsAuth() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int
}

// Runner dispatches one command line. The shell command feeds it lines.
type Runner interface {
	Run(ctx context.Context, args []string, out, errOut io.Writer) int
}

// Session is the state shared by every command run in one process.
type Session struct {
	// ID tags debug lines and published tasks.
	ID string

	// Tasks is the in-memory task list with undo.
	Tasks service.Tasks

	// In is read by the shell command.
	In io.Reader

	// Runner executes shell lines; set by the dispatcher.
	Runner Runner

	inShell  bool
	shellCfg *config.Config
}

// ShellConfig returns the settings the running shell was started with,
// or nil outside a shell. Lines run by the shell start from these.
func (s *Session) ShellConfig() *config.Config {
	return s.shellCfg
}

// NewSession creates a session around tasks reading shell input from in.
func NewSession(tasks service.Tasks, in io.Reader) *Session {
	return &Session{
		ID:    uuid.NewString(),
		Tasks: tasks,
		In:    in,
	}
}
