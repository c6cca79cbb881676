package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/arbor/internal/logging"
)

// SignalError is the cancellation cause of a context stopped by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e SignalError) Error() string {
	return "received signal: " + e.Signal.String()
}

// NotifyContext returns a context cancelled on SIGINT or SIGTERM. Unlike
// signal.NotifyContext it records the signal as the context's cause, so
// anything derived from it can report why it stopped.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			cancel(SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() { cancel(nil) }
}

// stopReason describes why ctx ended, for user-facing messages.
func stopReason(ctx context.Context) string {
	var sigErr SignalError
	if errors.As(context.Cause(ctx), &sigErr) {
		return sigErr.Signal.String()
	}
	return "context done"
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to keep Stdout clean for documents and graphs).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to w.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
