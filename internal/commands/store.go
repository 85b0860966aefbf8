package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/render"
	"todo/internal/storage"
	"todo/internal/task"
)

// openStore builds a task store over kv according to cfg and loads it.
func openStore(cfg *config.Config, kv storage.KV, r render.Renderer) (*task.Store, error) {
	opts := []task.Option{task.WithKey(cfg.StorageKey())}
	if cfg.Logger != nil {
		opts = append(opts, task.WithLogger(cfg.Logger.Named("store")))
	}
	if cfg.IDs == config.IDSchemeUUID {
		opts = append(opts, task.WithIDs(task.UUIDs{}))
	}

	st := task.New(kv, r, opts...)
	if err := st.Load(); err != nil {
		return nil, err
	}
	return st, nil
}

// outputRenderer redraws the list on out unless --quiet is set.
func outputRenderer(cfg *config.Config, out io.Writer) render.Renderer {
	if cfg.Quiet {
		return render.Discard
	}
	return render.NewText(out)
}

// storeFailure reports an error from a Store call. Renderer failures mean
// the terminal could not be written; everything else is storage.
func storeFailure(errOut io.Writer, err error) int {
	if errors.Is(err, task.ErrRender) {
		fmt.Fprintf(errOut, "error: output error: %v\n", err)
		return exitcode.OutputError
	}
	fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	return exitcode.StorageError
}
