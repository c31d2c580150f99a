// Package task defines the task entity and its status enumeration.
package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of a task. The set is closed; anything
// outside it is rejected at the boundary by ParseStatus.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses returns all known statuses in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status: %s (expected todo, in-progress or done)", s)
	}
	return st, nil
}

// Valid reports whether st is one of the three known statuses.
func (st Status) Valid() bool {
	switch st {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task represents a single tracked item. Instances held by callers are
// transient copies; the store owns the persisted sequence.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsDeleted   bool      `json:"isDeleted"`
}

// record mirrors Task on the wire with optional fields so decoding can tell
// a record with missing data apart from one carrying zero values. A missing
// required field means the store file is broken.
type record struct {
	ID          *int    `json:"id"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	CreatedAt   *string `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt"`
	IsDeleted   *bool   `json:"isDeleted"`
}

func (r record) toTask() (Task, error) {
	if r.ID == nil || r.Description == nil || r.Status == nil ||
		r.CreatedAt == nil || r.UpdatedAt == nil || r.IsDeleted == nil {
		return Task{}, errors.New("missing required field")
	}
	status, err := ParseStatus(*r.Status)
	if err != nil {
		return Task{}, err
	}
	created, err := time.Parse(time.RFC3339Nano, *r.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("createdAt: %w", err)
	}
	updated, err := time.Parse(time.RFC3339Nano, *r.UpdatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("updatedAt: %w", err)
	}
	return Task{
		ID:          *r.ID,
		Description: *r.Description,
		Status:      status,
		CreatedAt:   created,
		UpdatedAt:   updated,
		IsDeleted:   *r.IsDeleted,
	}, nil
}

// DecodeAll parses the on-disk JSON array of task records. A malformed
// document or a record missing required fields yields an error so the store
// can treat the whole file as broken.
func DecodeAll(data []byte) ([]Task, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	tasks := make([]Task, 0, len(recs))
	for i, r := range recs {
		t, err := r.toTask()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// EncodeAll renders tasks as the on-disk JSON array. A nil slice encodes as
// an empty array, never JSON null.
func EncodeAll(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	return json.Marshal(tasks)
}
