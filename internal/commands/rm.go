package commands

import (
	"context"
	"flag"
	"io"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/manager"
	"ttask/internal/store"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command (soft delete).
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"remove"} }
func (c *RmCmd) Synopsis() string  { return "Remove a task" }
func (c *RmCmd) Usage() string     { return "ttask rm <id>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, st store.Interface, args []string, out, errOut io.Writer) int {
	id, code := parseTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}

	m := manager.New(st, out)
	if !m.Remove(id) {
		return exitcode.UserError
	}
	return exitcode.Success
}
