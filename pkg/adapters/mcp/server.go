package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/query"
	"github.com/aretw0/arbor/pkg/session"
	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const treeURI = "arbor://tree"

// Server exposes an editor as an MCP server.
type Server struct {
	editor    *session.Editor
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures a logger for the Server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(editor *session.Editor, opts ...Option) *Server {
	s := &Server{
		editor:    editor,
		mcpServer: server.NewMCPServer("arbor-mcp", strings.TrimSpace(arbor.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, for embedding in other transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_tree",
		mcp.WithDescription("Get the whole decision tree as JSON."),
	), s.handleGetTree)

	s.mcpServer.AddTool(mcp.NewTool("find_node",
		mcp.WithDescription("Get a single node by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Node ID")),
	), s.handleFindNode)

	s.mcpServer.AddTool(mcp.NewTool("add_branch",
		mcp.WithDescription("Append a new child to a node. Any result on the node is cleared."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Parent node ID")),
	), s.handleAddBranch)

	s.mcpServer.AddTool(mcp.NewTool("remove_branch",
		mcp.WithDescription("Remove the children of a node that carry the given label."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Parent node ID")),
		mcp.WithString("label", mcp.Required(), mcp.Description("Branch label")),
	), s.handleRemoveBranch)

	s.mcpServer.AddTool(mcp.NewTool("update_node",
		mcp.WithDescription("Change the text fields of a node. Omitted fields are kept; an empty string clears an optional field."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Node ID")),
		mcp.WithString("label", mcp.Description("Answer text shown by the parent")),
		mcp.WithString("question", mcp.Description("Prompt shown at this node")),
		mcp.WithString("note", mcp.Description("Free-form note")),
		mcp.WithString("tag", mcp.Description("Free-form tag")),
	), s.handleUpdateNode)

	s.mcpServer.AddTool(mcp.NewTool("set_result",
		mcp.WithDescription("Turn a node into a leaf carrying the given result. Its branches are dropped."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Node ID")),
		mcp.WithString("result", mcp.Required(), mcp.Description("Result text")),
	), s.handleSetResult)

	s.mcpServer.AddTool(mcp.NewTool("remove_node",
		mcp.WithDescription("Detach a node and its subtree. The root cannot be removed."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Node ID")),
	), s.handleRemoveNode)

	s.mcpServer.AddTool(mcp.NewTool("query",
		mcp.WithDescription(`Select nodes with a boolean expression over id, label, question, result, note, tag, leaf, depth, branches and path, e.g. leaf && depth == 2.`),
		mcp.WithString("expr", mcp.Required(), mcp.Description("Expression")),
	), s.handleQuery)

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Render the tree as a Mermaid or Graphviz diagram."),
		mcp.WithString("format", mcp.Description("mermaid (default) or dot"), mcp.Enum("mermaid", "dot")),
	), s.handleGetGraph)

	s.mcpServer.AddTool(mcp.NewTool("save",
		mcp.WithDescription("Write the document to its file."),
	), s.handleSave)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(treeURI, "Current Decision Tree",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := codec.Marshal(s.editor.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("failed to encode tree: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      treeURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func (s *Server) handleGetTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return nodeResult(s.editor.Snapshot())
}

func (s *Server) handleFindNode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, ok := s.editor.Find(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", domain.ErrNodeNotFound, id)), nil
	}
	return nodeResult(n)
}

func (s *Server) handleAddBranch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	child, err := s.editor.AddBranch(id)
	if err != nil {
		return s.toolError("add_branch", err), nil
	}
	return nodeResult(child)
}

func (s *Server) handleRemoveBranch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	label, err := request.RequireString("label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.editor.RemoveBranch(id, label); err != nil {
		return s.toolError("remove_branch", err), nil
	}
	n, _ := s.editor.Find(id)
	return nodeResult(n)
}

func (s *Server) handleUpdateNode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	optional := func(key string) *string {
		v, ok := args[key].(string)
		if !ok {
			return nil
		}
		return &v
	}
	patch := session.Patch{
		Label:    optional("label"),
		Question: optional("question"),
		Note:     optional("note"),
		Tag:      optional("tag"),
	}

	n, err := s.editor.Apply(id, patch)
	if err != nil {
		return s.toolError("update_node", err), nil
	}
	return nodeResult(n)
}

func (s *Server) handleSetResult(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := request.RequireString("result")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, err := s.editor.SetResult(id, result)
	if err != nil {
		return s.toolError("set_result", err), nil
	}
	return nodeResult(n)
}

func (s *Server) handleRemoveNode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.editor.RemoveNode(id); err != nil {
		return s.toolError("remove_node", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("removed %s", id)), nil
}

type match struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Text string `json:"text"`
}

func (s *Server) handleQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	matches, err := query.Select(s.editor.Snapshot(), src)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := make([]match, 0, len(matches))
	for _, m := range matches {
		out = append(out, match{ID: m.Node.ID, Path: strings.Join(m.Path, "/"), Text: m.Node.DisplayText()})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleGetGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := graph.Format(request.GetString("format", string(graph.FormatMermaid)))
	out, err := graph.Render(s.editor.Snapshot(), format, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleSave(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.editor.Save(); err != nil {
		return s.toolError("save", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("saved %s", s.editor.Path())), nil
}

// toolError reports a failed edit to the client. Failures that are not the
// caller's fault are also logged.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	if !errors.Is(err, domain.ErrNodeNotFound) && !errors.Is(err, domain.ErrRootRemoval) {
		s.logger.Error("MCP tool failed", "tool", tool, "err", err)
	}
	return mcp.NewToolResultError(err.Error())
}

func nodeResult(n domain.Node) (*mcp.CallToolResult, error) {
	data, err := codec.Marshal(n)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
