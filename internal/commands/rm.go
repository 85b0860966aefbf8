package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/storage"
	"todo/internal/task"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "todo rm <n | id:ID>" }
func (c *RmCmd) NeedsStorage() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, kv storage.KV, args []string, out, errOut io.Writer) int {
	return runByRef(cfg, kv, args, out, errOut, (*task.Store).Delete)
}
