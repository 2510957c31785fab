// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"todo/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// PublishedTask is a task as the fake received it.
type PublishedTask struct {
	Task  service.Task
	Notes string
}

// FakePublisher is an in-memory service.Publisher for testing.
type FakePublisher struct {
	mu        sync.Mutex
	lists     []service.TaskList
	published map[string][]PublishedTask // listID -> tasks

	// Error injection for testing
	DefaultListErr error
	ResolveListErr error
	CreateTaskErr  error

	// FailAfter makes CreateTask fail once this many tasks were accepted.
	// Zero disables it.
	FailAfter int
}

// NewFakePublisher creates a FakePublisher with a default list "My Tasks".
func NewFakePublisher() *FakePublisher {
	return &FakePublisher{
		lists:     []service.TaskList{{ID: DefaultListID, Title: "My Tasks", IsDefault: true}},
		published: make(map[string][]PublishedTask),
	}
}

// AddList adds a remote list.
func (f *FakePublisher) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
}

// Published returns what was pushed into a list.
func (f *FakePublisher) Published(listID string) []PublishedTask {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]PublishedTask(nil), f.published[listID]...)
}

// DefaultList implements service.Publisher.
func (f *FakePublisher) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists[0], nil
}

// ResolveList implements service.Publisher.
func (f *FakePublisher) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	name = strings.TrimSpace(name)
	var matches []service.TaskList
	for _, l := range f.lists {
		if strings.EqualFold(strings.TrimSpace(l.Title), name) {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrAmbiguousList, name)
	}
}

// CreateTask implements service.Publisher.
func (f *FakePublisher) CreateTask(ctx context.Context, listID string, task service.Task, notes string) error {
	if f.CreateTaskErr != nil && (f.FailAfter == 0 || f.count() >= f.FailAfter) {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published[listID] = append(f.published[listID], PublishedTask{Task: task, Notes: notes})
	return nil
}

func (f *FakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, tasks := range f.published {
		n += len(tasks)
	}
	return n
}
