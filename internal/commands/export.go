package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd writes the task listing to a PDF file.
type ExportCmd struct{}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write the task listing as PDF" }
func (c *ExportCmd) Usage() string     { return "todo export <file.pdf>" }
func (c *ExportCmd) NeedsAuth() bool   { return false }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: output file required")
		return exitcode.UserError
	}
	path := args[0]

	if err := writePDFFile(path, sess.Tasks.List()); err != nil {
		fmt.Fprintf(errOut, "error: export: %v\n", err)
		return exitcode.BackendError
	}
	cfg.Debugf("session %s: exported listing to %s", sess.ID, path)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func writePDFFile(path string, tasks []service.Task) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return output.WritePDF(f, tasks)
}
