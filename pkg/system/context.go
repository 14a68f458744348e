package system

import (
	"context"
)

// RunWithContext executes a teardown operation under context control.
// The operation receives its own context, which is cancelled when the parent
// context expires, so it can abort outstanding work but still finish
// critical cleanup.
//
// Returns the operation's error, or waits for the operation to observe the
// cancellation when the parent context ends first.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller was already cancelled.
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads immediately.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to wind down, then wait it out so resources
		// are never abandoned mid-cleanup.
		cancel()
		return <-done
	}
}
