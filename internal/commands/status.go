package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/manager"
	"ttask/internal/store"
	"ttask/internal/task"
)

func init() {
	Register(&StatusCmd{})
}

// StatusCmd implements the status command. Transitions between the three
// statuses are free in any direction.
type StatusCmd struct{}

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return nil }
func (c *StatusCmd) Synopsis() string  { return "Update a task's status" }
func (c *StatusCmd) Usage() string     { return "ttask status <id> <todo|in-progress|done>" }
func (c *StatusCmd) NeedsStore() bool  { return true }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, st store.Interface, args []string, out, errOut io.Writer) int {
	id, code := parseTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: status required")
		return exitcode.UserError
	}

	// Reject unknown statuses before they reach the manager.
	status, err := task.ParseStatus(args[1])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	m := manager.New(st, out)
	if !m.UpdateStatus(id, status) {
		return exitcode.UserError
	}
	return exitcode.Success
}
