package cli

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/aretw0/arbor/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_StopsWithContext(t *testing.T) {
	app, out := newTestApp(t, nil, nil)
	path := samplePath(t, app)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := app.Serve(ctx, ServeOptions{Path: path, Port: "0", Watch: true, Quiet: true})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Shutting down (context done)...")
	assert.Contains(t, out.String(), "Server stopped gracefully")
}

func TestServe_ReportsSignal(t *testing.T) {
	app, out := newTestApp(t, nil, nil)
	path := samplePath(t, app)

	ctx, cancel := context.WithCancelCause(context.Background())
	time.AfterFunc(200*time.Millisecond, func() { cancel(SignalError{Signal: syscall.SIGTERM}) })

	err := app.Serve(ctx, ServeOptions{Path: path, Port: "0", Quiet: true})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Shutting down (terminated)...")
}

func TestNotifyContext_CancelHasNoSignal(t *testing.T) {
	ctx, cancel := NotifyContext(context.Background())
	cancel()

	<-ctx.Done()
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
	assert.Equal(t, "context done", stopReason(ctx))
}

func TestServe_MissingDocument(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)

	err := app.Serve(context.Background(), ServeOptions{Path: "does-not-exist.json", Port: "0"})

	assert.ErrorIs(t, err, codec.ErrIO)
}

func TestServeMCP_UnknownTransport(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)
	path := samplePath(t, app)

	err := app.ServeMCP(context.Background(), MCPOptions{Path: path, Transport: "carrier-pigeon"})

	assert.ErrorContains(t, err, "unknown transport")
}
