package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ttask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Interface, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ttask                                      List all tasks
  ttask list [common flags] [--status <s>]   List tasks, optionally by status
  ttask add [common flags] <description...>  Create a task (alias: new)
  ttask done [common flags] <id>             Mark a task done
  ttask status [common flags] <id> <status>  Set status: todo, in-progress, done
  ttask rm [common flags] <id>               Remove a task (alias: remove)
  ttask init [common flags] [--force]        Initialize an empty task store
  ttask help
  ttask version

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override task store file
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
