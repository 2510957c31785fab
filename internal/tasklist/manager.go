// Package tasklist couples a task store with its undo log.
package tasklist

import (
	"sync"

	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/undo"
)

// Manager implements service.Tasks. Every mutation and the push of its
// reversal happen under one lock.
type Manager struct {
	mu    sync.Mutex
	store *store.Store
	log   *undo.Log
}

var _ service.Tasks = (*Manager)(nil)

// New creates an empty task list.
func New() *Manager {
	return &Manager{
		store: store.New(),
		log:   undo.NewLog(),
	}
}

// Add appends a new open task and returns its id.
func (m *Manager) Add(title string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.store.NextID()
	m.store.Append(service.Task{ID: id, Title: title})
	m.log.Push(undo.UnAdd(id))
	return id
}

// MarkDone marks the task done. Unknown ids record nothing.
func (m *Manager) MarkDone(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.store.SetDone(id, true)
	if !ok {
		return false
	}
	m.log.Push(undo.UnMarkDone(id, prev))
	return true
}

// Delete removes the task. Unknown ids record nothing.
func (m *Manager) Delete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.store.IndexOf(id)
	if i < 0 {
		return false
	}
	removed := m.store.RemoveAt(i)
	m.log.Push(undo.UnDelete(removed))
	return true
}

// Undo reverses the most recent pending mutation.
func (m *Manager) Undo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.log.Undo(m.store)
}

// List returns the tasks in store order.
func (m *Manager) List() []service.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Tasks()
}

// History describes the pending reversals, newest first.
func (m *Manager) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.log.Entries()
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.String()
	}
	return result
}

// Pending returns the undo depth.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.log.Len()
}
