// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, bad task reference).
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration.
	ConfigError = 2

	// StorageError indicates the task database could not be opened, read or written.
	StorageError = 3

	// ServeError indicates the web UI could not listen or serve.
	ServeError = 4

	// OutputError indicates the list or an export could not be written to
	// the terminal or the output file.
	OutputError = 5
)
