package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ShellCmd{})
}

// ShellCmd reads command lines from the session input and runs each one
// against the same task list, so undo spans lines. Blank lines and lines
// starting with '#' are skipped; "exit" or "quit" ends the shell.
// Words split on spaces; quotes keep a title's spacing together.
// Common flags given to the shell apply to every line.
// A failing line is reported and the shell keeps going.
type ShellCmd struct {
	strict bool
}

// SetStrict sets strict mode (for testing).
func (c *ShellCmd) SetStrict(strict bool) {
	c.strict = strict
}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return []string{"repl"} }
func (c *ShellCmd) Synopsis() string  { return "Run commands from stdin in one session" }
func (c *ShellCmd) Usage() string     { return "todo shell [--strict]" }
func (c *ShellCmd) NeedsAuth() bool   { return false }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.strict, "strict", false, "")
}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, pub service.Publisher, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if sess.inShell {
		fmt.Fprintln(errOut, "error: already in a shell")
		return exitcode.UserError
	}
	if sess.Runner == nil || sess.In == nil {
		fmt.Fprintln(errOut, "error: shell input not available")
		return exitcode.UserError
	}

	sess.inShell = true
	sess.shellCfg = cfg
	defer func() {
		sess.inShell = false
		sess.shellCfg = nil
	}()

	strict := c.strict
	scanner := bufio.NewScanner(sess.In)
	lineNum := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			fmt.Fprintln(errOut, "error: cancelled")
			return exitcode.UserError
		}

		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := splitLine(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: line %d: %v\n", lineNum, err)
			if strict {
				return exitcode.UserError
			}
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			break
		}

		code := sess.Runner.Run(ctx, fields, out, errOut)
		if code != exitcode.Success {
			cfg.Debugf("session %s: line %d exited %d", sess.ID, lineNum, code)
			if strict {
				return code
			}
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: read input: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}

// splitLine splits a shell line into words. Single or double quotes group
// text into one word and keep its spacing; there are no escapes.
func splitLine(line string) ([]string, error) {
	var words []string
	var word strings.Builder
	inWord := false
	var quote rune

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, nil
}
