// Package service defines the task types and the interfaces commands work against.
package service

// Task represents a single task item.
type Task struct {
	ID    int
	Title string
	Done  bool
}

// TaskList represents a remote Google Tasks list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
