// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	// ListHeader opens the task listing.
	ListHeader = "##### ALL TASKS ######"

	// ListFooter closes the task listing.
	ListFooter = "######################"

	// DoneMark is printed in the box of a done task.
	DoneMark = "✔"
)

// FormatTasks writes the full listing: header, one line per task, footer.
func FormatTasks(w io.Writer, tasks []service.Task) {
	fmt.Fprintln(w, ListHeader)
	for _, task := range tasks {
		FormatTask(w, task)
	}
	fmt.Fprintln(w, ListFooter)
}

// FormatTask formats one task line.
// Format: "[{✔| }] {TITLE} (ID: {ID})\n"
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "[%s] %s (ID: %d)\n", checkbox(task.Done), normalizeTitle(task.Title), task.ID)
}

// FormatHistoryEntry formats one pending undo entry.
// Format: "{N:>4}  {DESCRIPTION}\n" where 1 is the entry undo applies next.
func FormatHistoryEntry(w io.Writer, num int, desc string) {
	fmt.Fprintf(w, "%4d  %s\n", num, desc)
}

func checkbox(done bool) string {
	if done {
		return DoneMark
	}
	return " "
}

// normalizeTitle normalizes a task title for display.
// Newlines become spaces so a task always stays on one line.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	return strings.ReplaceAll(title, "\n", " ")
}
