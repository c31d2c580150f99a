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
	Register(&InitCmd{})
}

// InitCmd implements the init command. Without --force an existing store
// file is left untouched; the store prints a notice and the command still
// succeeds.
type InitCmd struct {
	force bool
}

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Initialize an empty task store" }
func (c *InitCmd) Usage() string     { return "ttask init [--force]" }
func (c *InitCmd) NeedsStore() bool  { return true }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.BoolVar(&c.force, "f", false, "")
}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, st store.Interface, args []string, out, errOut io.Writer) int {
	if err := st.Init(c.force); err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "task store ready at %s\n", cfg.DataFile)
	}
	return exitcode.Success
}
