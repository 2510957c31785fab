package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&UndoCmd{})
}

// UndoCmd implements the undo command.
// Undo on an empty history succeeds without changing anything.
type UndoCmd struct{}

func (c *UndoCmd) Name() string      { return "undo" }
func (c *UndoCmd) Aliases() []string { return nil }
func (c *UndoCmd) Synopsis() string  { return "Reverse the most recent change" }
func (c *UndoCmd) Usage() string     { return "todo undo" }
func (c *UndoCmd) NeedsAuth() bool   { return false }

func (c *UndoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if sess.Tasks.Undo() {
		cfg.Debugf("session %s: undid last change", sess.ID)
	} else {
		cfg.Debugf("session %s: nothing to undo", sess.ID)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
