package mcpserver

import (
	"context"
	"io"
	"os"

	"ezmcp/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

// ServeStdio runs the MCP server over the given reader and writer until the
// stream closes or the context is canceled. The transport is a serial
// stream: one request is dispatched at a time and responses are written in
// request order.
func (a *Adapter) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	srv := server.NewStdioServer(a.BuildServer())

	logging.Info("MCPServer", "Serving MCP over stdio")
	return srv.Listen(ctx, in, out)
}

// Serve runs the server on the process's standard input and output.
func (a *Adapter) Serve(ctx context.Context) error {
	return a.ServeStdio(ctx, os.Stdin, os.Stdout)
}
