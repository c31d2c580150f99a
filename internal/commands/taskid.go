package commands

import (
	"fmt"
	"io"
	"strconv"

	"ttask/internal/exitcode"
)

// parseTaskID parses the single positional task id argument shared by the
// rm, status and done commands. Ids are positive integers.
// Returns the id and exitcode.Success, or an error exit code after printing
// a message to errOut.
func parseTaskID(args []string, errOut io.Writer) (int, int) {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task id required")
		return 0, exitcode.UserError
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		fmt.Fprintf(errOut, "error: invalid task id: %s\n", args[0])
		return 0, exitcode.UserError
	}
	return id, exitcode.Success
}
