package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/tasklist"
)

func init() {
	Register(&DemoCmd{})
}

// DemoCmd runs a fixed add/done/rm/undo sequence on a fresh task list and
// prints the listing after each stage. It is what `todo` runs with no args.
type DemoCmd struct{}

func (c *DemoCmd) Name() string      { return "demo" }
func (c *DemoCmd) Aliases() []string { return nil }
func (c *DemoCmd) Synopsis() string  { return "Run the built-in walkthrough" }
func (c *DemoCmd) Usage() string     { return "todo demo" }
func (c *DemoCmd) NeedsAuth() bool   { return false }

func (c *DemoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DemoCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int {
	RunDemo(tasklist.New(), out)
	return exitcode.Success
}

// RunDemo drives tasks through the walkthrough, writing three listings to out.
func RunDemo(tasks service.Tasks, out io.Writer) {
	tasks.Add("Go to the gym")
	tasks.Add("Wash clothes")
	tasks.Add("work")
	tasks.MarkDone(1)
	output.FormatTasks(out, tasks.List())

	tasks.Delete(1)
	tasks.Add("Sample Task")
	output.FormatTasks(out, tasks.List())

	tasks.Undo()
	output.FormatTasks(out, tasks.List())
}
