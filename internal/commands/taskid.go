package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the task id from positional args.
//
// Rules:
//  1. No args → ErrTaskIDRequired
//  2. More than one arg → error: too many arguments
//  3. First arg must be a positive decimal integer, optionally prefixed with '#'
//     (as copied from a listing) → the id
//  4. Anything else → error: invalid task id: <arg>
//
// An id that is well formed but unknown is not an error here; the task list
// treats it as a no-op.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("too many arguments: %s", strings.Join(args[1:], " "))
	}

	raw := strings.TrimPrefix(args[0], "#")
	if raw == "" || !isAllDigits(raw) {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits.
func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
