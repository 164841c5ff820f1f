package interrupt

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Token is a cooperative cancellation flag. The signal handler is its only
// writer during a real run and only ever flips it false to true; the pipeline
// polls it at stage boundaries.
type Token struct {
	requested atomic.Bool
}

// NewToken returns an unset token.
func NewToken() *Token {
	return &Token{}
}

// Requested reports whether an interrupt has been observed.
func (t *Token) Requested() bool {
	return t.requested.Load()
}

// Request marks the token. Safe to call from a signal handler goroutine.
func (t *Token) Request() {
	t.requested.Store(true)
}

// Reset clears the token. Exists for test isolation only; never called
// during normal operation.
func (t *Token) Reset() {
	t.requested.Store(false)
}

// Install registers SIGINT/SIGTERM handling that marks the token. The
// returned stop function releases the signal registration.
func Install(token *Token) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-ch:
			fmt.Fprintln(os.Stderr, "\nInterrupted, cleaning up...")
			token.Request()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
