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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `ttask` (no args) and `ttask list [status]`.
type ListCmd struct {
	status string
}

// SetStatus sets the status filter (for testing).
func (c *ListCmd) SetStatus(status string) {
	c.status = status
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "ttask list [--status <s>] [status]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st store.Interface, args []string, out, errOut io.Writer) int {
	// A positional status is accepted as well: `ttask list done`.
	raw := c.status
	if len(args) > 0 {
		if raw != "" {
			fmt.Fprintln(errOut, "error: status given twice")
			return exitcode.UserError
		}
		if len(args) > 1 {
			fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
			return exitcode.UserError
		}
		raw = args[0]
	}

	var filter task.Status
	if raw != "" {
		status, err := task.ParseStatus(raw)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		filter = status
	}

	m := manager.New(st, out)
	tasks, err := m.List(filter)
	if err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	if len(tasks) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}
