// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"ttask/internal/store"
	"ttask/internal/task"
)

// FakeStore is an in-memory implementation of store.Interface for testing.
// It replicates the file store's semantics: positional ids, clamp-to-append
// on Save, soft-delete filtering in GetByID, UpdatedAt stamping.
type FakeStore struct {
	mu    sync.Mutex
	tasks []task.Task

	// Now is the time source for UpdatedAt stamps. Defaults to time.Now.
	Now func() time.Time

	// Error injection for testing
	InitErr    error
	LoadAllErr error
	CountErr   error
	SaveErr    error
	GetByIDErr error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{Now: time.Now}
}

// Seed adds one todo task per description, mimicking Manager.Add.
func (f *FakeStore) Seed(descriptions ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, desc := range descriptions {
		now := f.Now()
		f.tasks = append(f.tasks, task.Task{
			ID:          len(f.tasks) + 1,
			Description: desc,
			Status:      task.StatusTodo,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
}

// Tasks returns a copy of the stored sequence, soft-deleted records included.
func (f *FakeStore) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Init implements store.Interface.
func (f *FakeStore) Init(force bool) error {
	if f.InitErr != nil {
		return f.InitErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if force {
		f.tasks = nil
	}
	return nil
}

// LoadAll implements store.Interface.
func (f *FakeStore) LoadAll() ([]task.Task, error) {
	if f.LoadAllErr != nil {
		return nil, f.LoadAllErr
	}
	return f.Tasks(), nil
}

// Count implements store.Interface.
func (f *FakeStore) Count() (int, error) {
	if f.CountErr != nil {
		return 0, f.CountErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks), nil
}

// Save implements store.Interface.
func (f *FakeStore) Save(t *task.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	if t.ID < 1 {
		return fmt.Errorf("invalid task id: %d", t.ID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t.UpdatedAt = f.Now()
	if idx := t.ID - 1; idx < len(f.tasks) {
		f.tasks[idx] = *t
	} else {
		f.tasks = append(f.tasks, *t)
	}
	return nil
}

// GetByID implements store.Interface.
func (f *FakeStore) GetByID(id int) (task.Task, error) {
	if f.GetByIDErr != nil {
		return task.Task{}, f.GetByIDErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if id < 1 || id > len(f.tasks) || f.tasks[id-1].IsDeleted {
		return task.Task{}, fmt.Errorf("(ID: %d): %w", id, store.ErrTaskNotFound)
	}
	return f.tasks[id-1], nil
}
