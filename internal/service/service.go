// Package service defines the task types and the interfaces commands work against.
package service

import (
	"context"
	"errors"
)

var (
	// ErrListNotFound is returned when no remote list matches a name.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned when several remote lists match a name.
	ErrAmbiguousList = errors.New("ambiguous list name")

	// ErrAuth marks publisher failures that a new login would fix.
	ErrAuth = errors.New("auth")
)

// Tasks is the in-memory task list of one session.
// Mutating calls record a reversal that Undo applies, newest first.
// Unknown ids and an empty undo log are no-ops; the bool results only
// report whether anything changed.
type Tasks interface {
	// Add appends a task and returns its id. Ids are never reused.
	Add(title string) int

	// MarkDone sets done on the task with the given id.
	MarkDone(id int) bool

	// Delete removes the task with the given id.
	Delete(id int) bool

	// Undo reverses the most recent mutation that has not been undone yet.
	Undo() bool

	// List returns the tasks in store order.
	List() []Task

	// History describes the pending reversals, newest first.
	History() []string
}

// Publisher pushes tasks into a remote Google Tasks account.
// Commands never import the Google SDK directly.
type Publisher interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrListNotFound or ErrAmbiguousList when it cannot pick one.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateTask inserts a copy of task into the list; done tasks are
	// created completed. notes is stored alongside the remote task.
	CreateTask(ctx context.Context, listID string, task Task, notes string) error
}
