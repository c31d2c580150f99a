// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ttask/internal/task"
)

// TimeLayout is the human-readable timestamp layout used in task lines.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTask writes the one-line representation of a task.
// Format: "Task(ID: N) desc=... status=... createdAt=... updatedAt=...".
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "Task(ID: %d) desc=%s status=%s createdAt=%s updatedAt=%s\n",
		t.ID,
		normalizeDescription(t.Description),
		t.Status,
		t.CreatedAt.Format(TimeLayout),
		t.UpdatedAt.Format(TimeLayout))
}

// normalizeDescription keeps task lines one line high.
// Empty or whitespace-only descriptions become "(untitled)".
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")
	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
