package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/manager"
	"ttask/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"new"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "ttask add <description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st store.Interface, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	// Join args to form the description
	description := strings.Join(args, " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	m := manager.New(st, out)
	if !m.Add(description) {
		return exitcode.UserError
	}
	return exitcode.Success
}
