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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                   Run the built-in walkthrough
  todo demo
  todo shell [common flags] [--strict]   Read commands from stdin, one per line
  todo add [common flags] <title...>
  todo done [common flags] <id>
  todo rm [common flags] <id>
  todo undo [common flags]
  todo list [common flags]
  todo history [common flags]
  todo export [common flags] <file.pdf>
  todo publish [common flags] [--list <list-name>]
  todo login [common flags]
  todo logout [common flags]
  todo help
  todo version

Tasks live in memory for one run; use "todo shell" to work on a list
across several commands. Shell lines split on spaces; quote a title
("Buy  milk") to keep it as typed. Common flags given to shell apply to
every line. Unknown ids are ignored, and undo with nothing
to undo does nothing.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TODO_CONFIG_DIR, TODO_QUIET, TODO_DEBUG, TODO_GOOGLE_LIST
`
