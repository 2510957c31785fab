// Package undo records reversal entries for store mutations and replays
// them newest first.
package undo

import (
	"fmt"

	"todo/internal/service"
	"todo/internal/store"
)

// Kind identifies which mutation an entry reverses.
type Kind string

const (
	KindUnAdd      Kind = "unadd"
	KindUnMarkDone Kind = "unmarkdone"
	KindUnDelete   Kind = "undelete"
)

// Entry is one reversal. Only the fields its Kind needs are set:
// ID for UnAdd, ID and PrevDone for UnMarkDone, Task for UnDelete.
type Entry struct {
	Kind     Kind
	ID       int
	PrevDone bool
	Task     service.Task // full snapshot of a deleted task
}

// UnAdd reverses an add by removing the task with id.
func UnAdd(id int) Entry {
	return Entry{Kind: KindUnAdd, ID: id}
}

// UnMarkDone reverses a mark-done by restoring the previous flag.
func UnMarkDone(id int, prevDone bool) Entry {
	return Entry{Kind: KindUnMarkDone, ID: id, PrevDone: prevDone}
}

// UnDelete reverses a delete by reinserting the snapshot.
func UnDelete(t service.Task) Entry {
	return Entry{Kind: KindUnDelete, ID: t.ID, Task: t}
}

// Apply runs the reversal against s.
// A task that no longer exists makes UnMarkDone a no-op.
// UnDelete appends at the end, not at the task's old position.
func (e Entry) Apply(s *store.Store) {
	switch e.Kind {
	case KindUnAdd:
		s.RemoveAll(e.ID)
	case KindUnMarkDone:
		s.SetDone(e.ID, e.PrevDone)
	case KindUnDelete:
		s.Append(e.Task)
	}
}

// String describes what applying the entry will do.
func (e Entry) String() string {
	switch e.Kind {
	case KindUnAdd:
		return fmt.Sprintf("remove task %d", e.ID)
	case KindUnMarkDone:
		return fmt.Sprintf("set done=%t on task %d", e.PrevDone, e.ID)
	case KindUnDelete:
		return fmt.Sprintf("restore task %d %q", e.Task.ID, e.Task.Title)
	default:
		return fmt.Sprintf("unknown entry %q", string(e.Kind))
	}
}

// Log is a LIFO stack of entries, one per mutation not yet undone.
type Log struct {
	entries []Entry
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Push records e on top of the stack.
func (l *Log) Push(e Entry) {
	l.entries = append(l.entries, e)
}

// Pop removes and returns the top entry, or false if the log is empty.
func (l *Log) Pop() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	last := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	return last, true
}

// Undo pops the top entry and applies it to s. The entry is discarded;
// there is no redo. Returns false when the log was empty.
func (l *Log) Undo(s *store.Store) bool {
	e, ok := l.Pop()
	if !ok {
		return false
	}
	e.Apply(s)
	return true
}

// Len returns the number of pending entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns the pending entries, newest first.
func (l *Log) Entries() []Entry {
	result := make([]Entry, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		result = append(result, l.entries[i])
	}
	return result
}
