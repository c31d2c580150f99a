// Package manager implements the user-facing task operations on top of the
// store. It is the boundary that absorbs failures into boolean results: an
// explanatory message is written before any false return, and no error from
// Add, Remove or UpdateStatus reaches the caller.
package manager

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ttask/internal/output"
	"ttask/internal/store"
	"ttask/internal/task"
)

// Manager enforces the task lifecycle rules. It never touches the backing
// file directly; all persistence goes through the store.
type Manager struct {
	store store.Interface
	out   io.Writer
	now   func() time.Time
}

// New creates a manager over the given store. Human-readable operation
// output goes to out.
func New(st store.Interface, out io.Writer) *Manager {
	return &Manager{store: st, out: out, now: time.Now}
}

// List returns the live tasks matching filter, in storage order, printing
// one line per task. An empty filter matches all three statuses.
// Soft-deleted tasks are always excluded.
func (m *Manager) List(filter task.Status) ([]task.Task, error) {
	tasks, err := m.store.LoadAll()
	if err != nil {
		return nil, err
	}
	matched := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsDeleted {
			continue
		}
		if filter != "" && t.Status != filter {
			continue
		}
		matched = append(matched, t)
	}
	for _, t := range matched {
		output.FormatTask(m.out, t)
	}
	return matched, nil
}

// Add creates a task with the next positional id (count+1), status todo and
// both timestamps set to now. Returns false if the description is empty or
// the save fails.
func (m *Manager) Add(description string) bool {
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(m.out, "task description required")
		return false
	}
	n, err := m.store.Count()
	if err != nil {
		fmt.Fprintf(m.out, "failed to add task: %v\n", err)
		return false
	}
	now := m.now()
	t := task.Task{
		ID:          n + 1,
		Description: description,
		Status:      task.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsDeleted:   false,
	}
	if err := m.store.Save(&t); err != nil {
		fmt.Fprintf(m.out, "failed to add task: %v\n", err)
		return false
	}
	fmt.Fprintf(m.out, "Task added successfully (ID: %d)\n", t.ID)
	return true
}

// Remove soft-deletes the task with the given id. The record stays in the
// store but disappears from all reads. Returns false when the id has no
// live task.
func (m *Manager) Remove(id int) bool {
	t, err := m.store.GetByID(id)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			fmt.Fprintf(m.out, "failed to remove task: %v\n", err)
		}
		return false
	}
	t.IsDeleted = true
	if err := m.store.Save(&t); err != nil {
		fmt.Fprintf(m.out, "failed to remove task: %v\n", err)
		return false
	}
	fmt.Fprintf(m.out, "Task removed successfully (ID: %d)\n", t.ID)
	return true
}

// UpdateStatus moves the task to s. Transitions between the three statuses
// are free in any direction. Unknown statuses and unknown ids return false.
func (m *Manager) UpdateStatus(id int, s task.Status) bool {
	if !s.Valid() {
		fmt.Fprintf(m.out, "unknown status: %s\n", s)
		return false
	}
	t, err := m.store.GetByID(id)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			fmt.Fprintf(m.out, "failed to update task status: %v\n", err)
		}
		return false
	}
	t.Status = s
	if err := m.store.Save(&t); err != nil {
		fmt.Fprintf(m.out, "failed to update task status: %v\n", err)
		return false
	}
	fmt.Fprintf(m.out, "Update task status successfully (ID: %d)\n", id)
	return true
}
