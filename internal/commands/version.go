package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

// Version is overridden with -ldflags "-X todo/internal/commands.Version=...".
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd prints the version line; with --debug it also logs the
// toolchain the binary was built with.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "todo version" }
func (c *VersionCmd) NeedsAuth() bool   { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "todo %s\n", Version)
	cfg.Debugf("session %s: built with %s %s/%s", sess.ID, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return exitcode.Success
}
