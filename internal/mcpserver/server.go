package mcpserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hashicorp-forge/outline-mcp/internal/version"
	"github.com/hashicorp-forge/outline-mcp/pkg/outline"
)

const (
	// ServerName is the name reported to MCP hosts.
	ServerName = "Outline"

	shutdownTimeout = 5 * time.Second
)

const instructions = `Read-only access to an Outline knowledge base. Use search_documents to find
documents, get_document or export_document to read them, and answer_question
for natural language questions when AI answers are enabled on the workspace.`

// Outline is the set of read operations the tools expose. *outline.Client
// implements it.
type Outline interface {
	SearchDocuments(ctx context.Context, opts outline.SearchDocumentsOptions) (*outline.SearchResults, error)
	GetDocument(ctx context.Context, opts outline.GetDocumentOptions) (*outline.Document, error)
	ListDocuments(ctx context.Context, opts outline.ListDocumentsOptions) (*outline.DocumentList, error)
	AnswerQuestion(ctx context.Context, opts outline.AnswerQuestionOptions) (*outline.Answer, error)
	ExportDocument(ctx context.Context, opts outline.ExportDocumentOptions) (string, error)
	ListCollections(ctx context.Context, opts outline.ListCollectionsOptions) (*outline.CollectionList, error)
	GetCollection(ctx context.Context, opts outline.CollectionOptions) (*outline.Collection, error)
	GetCollectionDocuments(ctx context.Context, opts outline.CollectionOptions) (*outline.CollectionDocuments, error)
	ListDraftDocuments(ctx context.Context, opts outline.ListDraftDocumentsOptions) (*outline.DraftList, error)
	ListRecentlyViewedDocuments(ctx context.Context, opts outline.ListRecentlyViewedOptions) (*outline.ViewedList, error)
	AuthInfo(ctx context.Context) (*outline.AuthInfo, error)
}

// Server exposes Outline operations as MCP tools.
type Server struct {
	mcp     *server.MCPServer
	outline Outline
	logger  hclog.Logger
}

// New creates a server with every tool registered against client.
func New(client Outline, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Server{
		outline: client,
		logger:  logger.Named("mcp"),
	}

	s.mcp = server.NewMCPServer(ServerName, version.Version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	for _, t := range toolDefs() {
		s.mcp.AddTool(t.definition(), s.handler(t))
	}

	return s
}

// Catalog returns the definitions of every tool, in registration order.
func Catalog() []mcp.Tool {
	defs := toolDefs()
	tools := make([]mcp.Tool, 0, len(defs))
	for _, t := range defs {
		tools = append(tools, t.definition())
	}
	return tools
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves the protocol over in and out until ctx is cancelled or
// in is closed. Nothing else may write to out.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(s.logger.StandardLogger(&hclog.StandardLoggerOptions{
		InferLevels: true,
	}))

	s.logger.Info("serving MCP over stdio")
	err := stdio.Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ServeHTTP serves the streamable HTTP transport on addr until ctx is
// cancelled.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.mcp)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(addr)
	}()

	s.logger.Info("serving MCP over streamable HTTP", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
