package commands

import (
	"context"
	"flag"
	"io"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/manager"
	"ttask/internal/store"
	"ttask/internal/task"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command, shorthand for "status <id> done".
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task done" }
func (c *DoneCmd) Usage() string     { return "ttask done <id>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st store.Interface, args []string, out, errOut io.Writer) int {
	id, code := parseTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}

	m := manager.New(st, out)
	if !m.UpdateStatus(id, task.StatusDone) {
		return exitcode.UserError
	}
	return exitcode.Success
}
