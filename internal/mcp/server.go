// ABOUTME: MCP server setup for the wellness log.
// ABOUTME: Wraps MCP server with a storage Store and the active form schema.
package mcp

import (
	"context"

	"github.com/harperreed/wellness/internal/schema"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
	doc       *schema.Document
}

// NewServer creates a new MCP server over the given store and schema.
func NewServer(store storage.Store, doc *schema.Document) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "wellness",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		doc:       doc,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
