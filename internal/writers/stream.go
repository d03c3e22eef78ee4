package writers

import (
	"bufio"
	"io"
)

// start spins up a writer goroutine feeding every value through enc.
// On error the channel is still drained so senders never block.
func start[T any](out io.Writer, enc Encoder[T], lookupErr error, bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriter(out)
		err := lookupErr
		if err == nil {
			err = enc.Begin(bw)
		}
		for v := range in {
			if err != nil {
				continue
			}
			err = enc.Encode(bw, v)
		}
		if err == nil {
			err = enc.End(bw)
		}
		if ferr := bw.Flush(); err == nil && ferr != nil && !IsBrokenPipe(ferr) {
			err = ferr
		}
		errCh <- err
	}()
	return in, errCh
}
