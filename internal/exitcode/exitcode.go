// Package exitcode defines the process exit codes of the todo CLI.
package exitcode

const (
	// Success indicates successful completion, including silent no-ops
	// such as undo on an empty log.
	Success = 0

	// UserError indicates bad input: unknown command or flag, missing or
	// malformed task id, empty title.
	UserError = 1

	// AuthError indicates missing or unusable Google credentials.
	AuthError = 2

	// BackendError indicates a Google Tasks API or file output failure.
	BackendError = 3
)
