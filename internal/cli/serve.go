package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/presentation/tui"
	httpAdapter "github.com/aretw0/arbor/pkg/adapters/http"
	"github.com/aretw0/arbor/pkg/adapters/mcp"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/session"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures Serve.
type ServeOptions struct {
	Path  string
	Port  string
	Watch bool // Reload the document when its file changes
	Quiet bool // Skip the banner
}

// Serve exposes the document over HTTP until ctx is done.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	ed, err := a.openEditor(opts.Path)
	if err != nil {
		return err
	}

	server := httpAdapter.NewServer(ed, httpAdapter.WithLogger(a.Logger))
	srv := &http.Server{
		Addr:    ":" + opts.Port,
		Handler: server.Handler(),
	}

	if !opts.Quiet {
		tui.PrintBanner(a.Out, strings.TrimSpace(arbor.Version))
	}

	if opts.Watch {
		go a.watch(ctx, ed, func(domain.Node) {
			server.Notify("reloaded")
		})
	}

	a.Logger.Info("HTTP server listening", "address", srv.Addr, "path", opts.Path)
	printSystemMessage(a.Out, "Serving %s on %s", opts.Path, srv.Addr)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		printSystemMessage(a.Out, "Shutting down (%s)...", stopReason(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		if ed.Dirty() {
			a.Logger.Warn("Unsaved changes discarded", "path", opts.Path)
		}
		printSystemMessage(a.Out, "Server stopped gracefully")
		return nil
	}
}

// MCPOptions configures ServeMCP.
type MCPOptions struct {
	Path      string
	Transport string // "stdio" (default) or "sse"
	Port      int
	Watch     bool
}

// ServeMCP exposes the document as an MCP server until ctx is done or the
// client disconnects.
func (a *App) ServeMCP(ctx context.Context, opts MCPOptions) error {
	ed, err := a.openEditor(opts.Path)
	if err != nil {
		return err
	}
	srv := mcp.NewServer(ed, mcp.WithLogger(a.Logger))

	if opts.Watch {
		go a.watch(ctx, ed, nil)
	}

	switch opts.Transport {
	case "", "stdio":
		a.Logger.Info("Starting MCP server (stdio)", "path", opts.Path)
		return srv.ServeStdio()
	case "sse":
		a.Logger.Info("Starting MCP server (SSE)", "path", opts.Path, "port", opts.Port)
		if err := srv.ServeSSE(ctx, opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		a.Logger.Info("MCP server stopped gracefully")
		return nil
	default:
		return fmt.Errorf("unknown transport %q (supported: stdio, sse)", opts.Transport)
	}
}

func (a *App) watch(ctx context.Context, ed *session.Editor, onReload func(domain.Node)) {
	if err := ed.Watch(ctx, onReload); err != nil {
		a.Logger.Error("Watcher stopped", "err", err)
	}
}
