package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&HistoryCmd{})
}

// HistoryCmd prints the pending undo entries, the next one to apply first.
type HistoryCmd struct{}

func (c *HistoryCmd) Name() string      { return "history" }
func (c *HistoryCmd) Aliases() []string { return nil }
func (c *HistoryCmd) Synopsis() string  { return "Show what undo would reverse" }
func (c *HistoryCmd) Usage() string     { return "todo history" }
func (c *HistoryCmd) NeedsAuth() bool   { return false }

func (c *HistoryCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HistoryCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int {
	entries := sess.Tasks.History()
	if len(entries) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "nothing to undo")
		}
		return exitcode.Success
	}

	for i, desc := range entries {
		output.FormatHistoryEntry(out, i+1, desc)
	}
	return exitcode.Success
}
