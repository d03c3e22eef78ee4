package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"kmerkit/core/seqerr"
	"kmerkit/internal/cliutil"
	"kmerkit/internal/seqio"
	"kmerkit/internal/writers"
)

var errNoInput = errors.New("provide input files, '-' for stdin, or --seq")

// forEachInput feeds every --seq literal, then every line of every positional
// input, to fn in order.
func (s *state) forEachInput(c *cobra.Command, args []string, fn func(seqio.Record) error) error {
	if len(args) == 0 && len(s.seqs) == 0 {
		return usageErr(errNoInput, c.UsageString())
	}
	paths, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return usageErr(err, "")
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	for _, r := range seqio.Literal(s.seqs) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	for _, p := range paths {
		s.log.Debug("input.open", "path", p)
		if err := seqio.ScanPath(ctx, p, fn); err != nil {
			return classifyInputErr(err)
		}
	}
	return nil
}

// classifyInputErr marks open/scan failures as I/O errors; errors that came
// back from the per-record callback already carry their own classification.
func classifyInputErr(err error) error {
	var ee *ExitError
	if errors.As(err, &ee) || errors.Is(err, context.Canceled) || isDomainErr(err) {
		return err
	}
	return ioErr(err)
}

func isDomainErr(err error) bool {
	var e *seqerr.Error
	return errors.As(err, &e)
}

// send hands v to the writer unless ctx is canceled first.
func send[T any](ctx context.Context, in chan<- T, v T) error {
	if ctx == nil {
		in <- v
		return nil
	}
	select {
	case in <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish combines the producer error with the writer's result. Writer
// failures win; a broken pipe is not a failure.
func finish(runErr error, writeErr <-chan error) error {
	if werr := <-writeErr; werr != nil {
		if writers.IsBrokenPipe(werr) {
			return nil
		}
		return ioErr(werr)
	}
	return runErr
}
