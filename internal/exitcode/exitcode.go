// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, not found).
	UserError = 1

	// StoreError indicates an unexpected storage failure.
	StoreError = 2
)
