package cmd

import (
	"errors"
	"fmt"

	"github.com/itsmostafa/docindex/internal/index"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitConflict = 3
)

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// errCheckFailed is returned by check when the fragment has problems; the
// details have already been printed.
var errCheckFailed = errors.New("generated index failed verification")

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	var conflict *index.ConflictingLinkError
	if errors.As(err, &conflict) {
		return ExitConflict
	}
	return ExitFailure
}

func exactArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Msg: fmt.Sprintf("%s (usage: %s)", msg, cmd.UseLine())}
		}
		return nil
	}
}
