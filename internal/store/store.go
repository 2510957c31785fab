// Package store holds the ordered task collection and its id counter.
package store

import "todo/internal/service"

// Store is an ordered sequence of tasks. It has no undo knowledge;
// callers record reversals themselves.
type Store struct {
	tasks  []service.Task
	lastID int
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// NextID advances the counter and returns the new id.
// Ids start at 1 and are never handed out twice.
func (s *Store) NextID() int {
	s.lastID++
	return s.lastID
}

// Append adds a task at the end.
func (s *Store) Append(t service.Task) {
	s.tasks = append(s.tasks, t)
}

// IndexOf returns the position of the first task with id, or -1.
func (s *Store) IndexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// SetDone sets the done flag on the first task with id.
// Returns the previous value and whether the task exists.
func (s *Store) SetDone(id int, done bool) (prev bool, ok bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return false, false
	}
	prev = s.tasks[i].Done
	s.tasks[i].Done = done
	return prev, true
}

// RemoveAt removes and returns the task at position i.
func (s *Store) RemoveAt(i int) service.Task {
	t := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return t
}

// RemoveAll drops every task with id and reports how many were removed.
func (s *Store) RemoveAll(id int) int {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	n := len(s.tasks) - len(kept)
	s.tasks = kept
	return n
}

// Tasks returns a copy of the tasks in store order.
func (s *Store) Tasks() []service.Task {
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}
