// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"kmerkit/internal/cli"
	"kmerkit/internal/logger"
)

// RunContext executes one kmerkit invocation and returns its exit code.
// Errors are reported on stderr; usage follows for argument mistakes.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	defer logger.Reset()

	cmd := cli.NewRootCmd(stdout, stderr)
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(parent)
	code := cli.ExitCode(err)
	if code == cli.ExitOK || code == cli.ExitCanceled {
		return code
	}

	_, _ = fmt.Fprintln(stderr, "error:", err)
	var ee *cli.ExitError
	if errors.As(err, &ee) && ee.Usage != "" {
		_, _ = fmt.Fprint(stderr, "\n", ee.Usage)
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
