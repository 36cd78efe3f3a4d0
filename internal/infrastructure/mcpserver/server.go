// Package mcpserver exposes the search service over the Model Context Protocol.
//
// It is routing only: every tool, resource and prompt handler translates MCP
// arguments into a call on domain.SearchService and renders the answer.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/ports"
)

// ErrMissingSearchService is returned when no search service is supplied.
var ErrMissingSearchService = errors.New("mcpserver: search service is required")

// Options configures the MCP server identity.
type Options struct {
	Name    string
	Version string
}

// Server wraps an MCP server bound to a search service.
type Server struct {
	search domain.SearchService
	logger ports.Logger
	mcp    *server.MCPServer
}

// New registers all tools, resources and prompts.
func New(search domain.SearchService, log ports.Logger, opts Options) (*Server, error) {
	if search == nil {
		return nil, ErrMissingSearchService
	}
	if opts.Name == "" {
		opts.Name = domain.DefaultServerName
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		search: search,
		logger: log,
		mcp: server.NewMCPServer(opts.Name, opts.Version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithPromptCapabilities(false),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	s.registerResources()
	s.registerPrompts()
	return s, nil
}

// MCP returns the underlying server, e.g. for in-process clients.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves JSON-RPC over the given streams until ctx is done or in closes.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("serving MCP over stdio", nil)
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// ServeHTTP serves the streamable HTTP transport on addr until ctx is done.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.mcp)
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving MCP over HTTP", map[string]interface{}{"addr": addr})
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
