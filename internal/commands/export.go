package commands

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/export"
	"todo/internal/render"
	"todo/internal/storage"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	output string
}

// SetFormat sets the export format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetOutput sets the output file (for testing).
func (c *ExportCmd) SetOutput(path string) {
	c.output = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write tasks as json, csv or pdf" }
func (c *ExportCmd) Usage() string {
	return "todo export [--format " + strings.Join(export.Formats, "|") + "] [--output <file>]"
}
func (c *ExportCmd) NeedsStorage() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", export.FormatJSON, "")
	fs.StringVar(&c.format, "f", export.FormatJSON, "")
	fs.StringVar(&c.output, "output", "", "")
	fs.StringVar(&c.output, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, kv storage.KV, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	format := c.format
	if format == "" {
		format = export.FormatJSON
	}

	st, err := openStore(cfg, kv, render.Discard)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	// Encode fully before touching the destination so a bad format
	// never truncates an existing file.
	var buf bytes.Buffer
	if err := export.Write(&buf, format, st.View()); err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			fmt.Fprintf(errOut, "error: unknown format: %s\n", format)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: export failed: %v\n", err)
		return exitcode.OutputError
	}

	if c.output == "" || c.output == "-" {
		if _, err := out.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(errOut, "error: output error: %v\n", err)
			return exitcode.OutputError
		}
		return exitcode.Success
	}

	if err := os.WriteFile(c.output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(errOut, "error: failed to write %s: %v\n", c.output, err)
		return exitcode.OutputError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "wrote %s\n", c.output)
	}
	return exitcode.Success
}
