package undo_test

import (
	"testing"

	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/undo"
)

func newStore(tasks ...service.Task) *store.Store {
	s := store.New()
	for _, t := range tasks {
		s.Append(t)
	}
	return s
}

func TestApply_UnAddRemovesTask(t *testing.T) {
	s := newStore(service.Task{ID: 1, Title: "a"}, service.Task{ID: 2, Title: "b"})

	undo.UnAdd(1).Apply(s)

	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("expected only task 2 left, got %+v", tasks)
	}
}

func TestApply_UnMarkDoneRestoresFlag(t *testing.T) {
	s := newStore(service.Task{ID: 1, Title: "a", Done: true})

	undo.UnMarkDone(1, false).Apply(s)

	if s.Tasks()[0].Done {
		t.Error("expected done to be restored to false")
	}
}

func TestApply_UnMarkDoneOnDeletedTaskIsNoop(t *testing.T) {
	s := newStore(service.Task{ID: 2, Title: "b", Done: true})

	undo.UnMarkDone(1, false).Apply(s)

	tasks := s.Tasks()
	if len(tasks) != 1 || !tasks[0].Done {
		t.Errorf("expected store unchanged, got %+v", tasks)
	}
}

func TestApply_UnDeleteAppendsAtEnd(t *testing.T) {
	s := newStore(service.Task{ID: 2, Title: "b"}, service.Task{ID: 3, Title: "c"})

	undo.UnDelete(service.Task{ID: 1, Title: "a", Done: true}).Apply(s)

	tasks := s.Tasks()
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	last := tasks[2]
	if last.ID != 1 || last.Title != "a" || !last.Done {
		t.Errorf("expected snapshot appended at the end, got %+v", last)
	}
}

func TestLog_UndoOnEmptyLog(t *testing.T) {
	s := newStore(service.Task{ID: 1, Title: "a"})
	l := undo.NewLog()

	if l.Undo(s) {
		t.Error("expected Undo on empty log to report false")
	}
	if s.Len() != 1 {
		t.Error("expected store unchanged")
	}
}

func TestLog_LIFOOrder(t *testing.T) {
	l := undo.NewLog()
	l.Push(undo.UnAdd(1))
	l.Push(undo.UnAdd(2))
	l.Push(undo.UnMarkDone(1, false))

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Kind != undo.KindUnMarkDone || entries[2].ID != 1 {
		t.Errorf("expected newest first, got %+v", entries)
	}

	e, ok := l.Pop()
	if !ok || e.Kind != undo.KindUnMarkDone {
		t.Errorf("expected to pop the mark-done reversal, got %+v", e)
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 entries left, got %d", l.Len())
	}
}

func TestEntry_String(t *testing.T) {
	tests := []struct {
		entry undo.Entry
		want  string
	}{
		{undo.UnAdd(4), "remove task 4"},
		{undo.UnMarkDone(1, false), "set done=false on task 1"},
		{undo.UnDelete(service.Task{ID: 1, Title: "Go to the gym"}), `restore task 1 "Go to the gym"`},
	}

	for _, tt := range tests {
		if got := tt.entry.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
