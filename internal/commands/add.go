package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/storage"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Add a task" }
func (c *AddCmd) Usage() string      { return "todo add <text...>" }
func (c *AddCmd) NeedsStorage() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

// Run joins args into the task text. Blank text is ignored without
// complaint, the same as submitting an empty form.
func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, kv storage.KV, args []string, out, errOut io.Writer) int {
	st, err := openStore(cfg, kv, outputRenderer(cfg, out))
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if _, _, err := st.Add(strings.Join(args, " ")); err != nil {
		return storeFailure(errOut, err)
	}
	return exitcode.Success
}
