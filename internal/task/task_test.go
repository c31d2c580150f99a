package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttask/internal/task"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    task.Status
		wantErr bool
	}{
		{in: "todo", want: task.StatusTodo},
		{in: "in-progress", want: task.StatusInProgress},
		{in: "done", want: task.StatusDone},
		{in: "", wantErr: true},
		{in: "DONE", wantErr: true},
		{in: "in_progress", wantErr: true},
		{in: "cancelled", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := task.ParseStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatuses(t *testing.T) {
	assert.Equal(t,
		[]task.Status{task.StatusTodo, task.StatusInProgress, task.StatusDone},
		task.Statuses())
}

func TestDecodeAll(t *testing.T) {
	data := []byte(`[{
		"id": 1,
		"description": "Buy milk",
		"status": "todo",
		"createdAt": "2026-08-27T10:00:00Z",
		"updatedAt": "2026-08-27T10:05:00Z",
		"isDeleted": false
	}]`)

	tasks, err := task.DecodeAll(data)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	got := tasks[0]
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Buy milk", got.Description)
	assert.Equal(t, task.StatusTodo, got.Status)
	assert.True(t, got.CreatedAt.Equal(time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)))
	assert.True(t, got.UpdatedAt.Equal(time.Date(2026, 8, 27, 10, 5, 0, 0, time.UTC)))
	assert.False(t, got.IsDeleted)
}

func TestDecodeAllRejectsBrokenInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{oops`},
		{name: "not an array", data: `{"id":1}`},
		{name: "missing status", data: `[{"id":1,"description":"x","createdAt":"2026-08-27T10:00:00Z","updatedAt":"2026-08-27T10:00:00Z","isDeleted":false}]`},
		{name: "missing isDeleted", data: `[{"id":1,"description":"x","status":"todo","createdAt":"2026-08-27T10:00:00Z","updatedAt":"2026-08-27T10:00:00Z"}]`},
		{name: "unknown status", data: `[{"id":1,"description":"x","status":"paused","createdAt":"2026-08-27T10:00:00Z","updatedAt":"2026-08-27T10:00:00Z","isDeleted":false}]`},
		{name: "bad timestamp", data: `[{"id":1,"description":"x","status":"todo","createdAt":"yesterday","updatedAt":"2026-08-27T10:00:00Z","isDeleted":false}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := task.DecodeAll([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestEncodeAllNilIsEmptyArray(t *testing.T) {
	data, err := task.EncodeAll(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 27, 9, 30, 0, 123456789, time.UTC)
	in := []task.Task{{
		ID:          3,
		Description: "Write report",
		Status:      task.StatusDone,
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
		IsDeleted:   true,
	}}

	data, err := task.EncodeAll(in)
	require.NoError(t, err)
	out, err := task.DecodeAll(data)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, in[0].ID, out[0].ID)
	assert.Equal(t, in[0].Description, out[0].Description)
	assert.Equal(t, in[0].Status, out[0].Status)
	assert.True(t, out[0].CreatedAt.Equal(in[0].CreatedAt))
	assert.True(t, out[0].UpdatedAt.Equal(in[0].UpdatedAt))
	assert.True(t, out[0].IsDeleted)
}
