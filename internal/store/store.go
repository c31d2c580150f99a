// Package store persists the task sequence as a single JSON file.
//
// Task identity is positional: id n lives at index n-1 of the persisted
// array. The coupling is load-bearing; Save relies on it and records are
// never physically removed, only marked deleted.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"ttask/internal/task"
)

// ErrTaskNotFound indicates an id with no live (non-deleted) record.
var ErrTaskNotFound = errors.New("task not found")

// Interface is the store surface the manager and commands depend on.
// *Store implements it; testutil.FakeStore provides an in-memory version.
type Interface interface {
	Init(force bool) error
	LoadAll() ([]task.Task, error)
	Count() (int, error)
	Save(t *task.Task) error
	GetByID(id int) (task.Task, error)
}

// Store owns the on-disk task sequence. Every operation is a full read of
// the file, every mutation a full rewrite.
//
// A per-instance mutex plus an advisory flock on <path>.lock guard each
// read-modify-write cycle, so concurrent stores within one process and
// cooperating processes on the same host do not lose updates. Processes
// that ignore the lock file remain unguarded.
type Store struct {
	path    string
	mu      sync.Mutex
	flk     *flock.Flock
	notices io.Writer
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNotices redirects human-readable store notices. Default is stderr.
func WithNotices(w io.Writer) Option {
	return func(s *Store) { s.notices = w }
}

// WithClock overrides the time source used to stamp UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store bound to the given file path. The file itself is not
// touched until the first operation.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:    path,
		flk:     flock.New(path + ".lock"),
		notices: os.Stderr,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

func (s *Store) lock() (func(), error) {
	s.mu.Lock()
	if err := s.flk.Lock(); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("lock store %s: %w", s.path, err)
	}
	return func() {
		_ = s.flk.Unlock()
		s.mu.Unlock()
	}, nil
}

// Init creates a fresh, empty store file. With force=false an existing file
// is left untouched and a notice is printed; this is informational, not an
// error. With force=true the file is unconditionally overwritten.
func (s *Store) Init(force bool) error {
	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()
	return s.init(force)
}

// init assumes the lock is held.
func (s *Store) init(force bool) error {
	if !force {
		if _, err := os.Stat(s.path); err == nil {
			fmt.Fprintln(s.notices, "task store already exists!")
			return nil
		}
	}
	data, err := task.EncodeAll(nil)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", s.path, err)
	}
	return nil
}

// LoadAll reads the full task sequence, including soft-deleted records.
//
// A missing file is initialized empty first. A file that cannot be parsed,
// or that holds a record missing required fields, is self-healing: a notice
// is printed, the store is reinitialized empty (destructive) and an empty
// sequence is returned. Corruption never surfaces as an error; only raw I/O
// failures do.
func (s *Store) LoadAll() ([]task.Task, error) {
	unlock, err := s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.loadAll()
}

// loadAll assumes the lock is held.
func (s *Store) loadAll() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.init(true); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}
	tasks, err := task.DecodeAll(data)
	if err != nil {
		fmt.Fprintln(s.notices, "task store is broken!")
		fmt.Fprintln(s.notices, "creating a new one...")
		if err := s.init(true); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return tasks, nil
}

// Count returns the number of persisted records, soft-deleted ones included.
func (s *Store) Count() (int, error) {
	unlock, err := s.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()
	tasks, err := s.loadAll()
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// Save writes t into the sequence at position t.ID-1 and rewrites the whole
// file. An id past the end of the sequence appends; an existing position is
// overwritten. UpdatedAt is stamped on t before writing.
func (s *Store) Save(t *task.Task) error {
	if t.ID < 1 {
		return fmt.Errorf("invalid task id: %d", t.ID)
	}
	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	tasks, err := s.loadAll()
	if err != nil {
		return err
	}
	t.UpdatedAt = s.now()
	if idx := t.ID - 1; idx < len(tasks) {
		tasks[idx] = *t
	} else {
		// An id beyond the end clamps to an append, gap or not. Ids past
		// count+1 never occur through the manager.
		tasks = append(tasks, *t)
	}
	data, err := task.EncodeAll(tasks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", s.path, err)
	}
	return nil
}

// GetByID returns the live task stored at position id-1. Out-of-range ids
// and soft-deleted tasks report ErrTaskNotFound after a printed notice.
func (s *Store) GetByID(id int) (task.Task, error) {
	unlock, err := s.lock()
	if err != nil {
		return task.Task{}, err
	}
	defer unlock()

	tasks, err := s.loadAll()
	if err != nil {
		return task.Task{}, err
	}
	if id < 1 || id > len(tasks) || tasks[id-1].IsDeleted {
		fmt.Fprintf(s.notices, "(ID: %d) is not found\n", id)
		return task.Task{}, fmt.Errorf("(ID: %d): %w", id, ErrTaskNotFound)
	}
	return tasks[id-1], nil
}
