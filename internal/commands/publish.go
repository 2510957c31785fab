package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&PublishCmd{})
}

// PublishCmd copies the session's tasks into a Google Tasks list.
// It only writes remotely; nothing is read back into the session.
type PublishCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *PublishCmd) SetListName(name string) {
	c.listName = name
}

func (c *PublishCmd) Name() string      { return "publish" }
func (c *PublishCmd) Aliases() []string { return nil }
func (c *PublishCmd) Synopsis() string  { return "Copy tasks to Google Tasks" }
func (c *PublishCmd) Usage() string     { return "todo publish [--list <list-name>]" }
func (c *PublishCmd) NeedsAuth() bool   { return true }

func (c *PublishCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PublishCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := sess.Tasks.List()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "nothing to publish")
		}
		return exitcode.Success
	}

	listName := strings.TrimSpace(c.listName)
	if listName == "" {
		listName = strings.TrimSpace(cfg.GoogleList)
	}

	var list service.TaskList
	var err error
	if listName != "" {
		list, err = pub.ResolveList(ctx, listName)
		if err != nil {
			if errors.Is(err, service.ErrListNotFound) {
				fmt.Fprintf(errOut, "error: list not found: %s\n", listName)
				return exitcode.UserError
			}
			if errors.Is(err, service.ErrAmbiguousList) {
				fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", listName)
				return exitcode.UserError
			}
			return backendFailure(errOut, err)
		}
	} else {
		list, err = pub.DefaultList(ctx)
		if err != nil {
			return backendFailure(errOut, err)
		}
	}

	for i, task := range tasks {
		notes := fmt.Sprintf("todo session %s, task %d", sess.ID, task.ID)
		if err := pub.CreateTask(ctx, list.ID, task, notes); err != nil {
			fmt.Fprintf(errOut, "error: published %d of %d tasks\n", i, len(tasks))
			return backendFailure(errOut, err)
		}
		cfg.Debugf("session %s: published task %d to %s", sess.ID, task.ID, list.ID)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "published %d tasks to %s\n", len(tasks), list.Title)
	}
	return exitcode.Success
}

// backendFailure reports a Google Tasks error and picks the exit code.
func backendFailure(errOut io.Writer, err error) int {
	if errors.Is(err, service.ErrAuth) {
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
