package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/goaltrail/goaltrail-mcp/internal/common"
)

// Dispatcher routes one tool call through lookup, argument validation,
// request construction, the single HTTP exchange, and result formatting.
// Every outcome — success, backend failure, or internal fault — terminates
// as a normal tool result; nothing escapes to the transport layer.
type Dispatcher struct {
	catalog *catalog
	client  *APIClient
	logger  *common.Logger
}

// NewDispatcher creates a dispatcher over an immutable catalog. The
// dispatcher holds no per-call state and is safe for concurrent use.
func NewDispatcher(cat *catalog, client *APIClient, logger *common.Logger) *Dispatcher {
	return &Dispatcher{catalog: cat, client: client, logger: logger}
}

// Call executes one tool invocation end to end.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult) {
	logger := d.logger.WithCorrelationId(uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("tool", name).Msgf("handler panic: %v", r)
			result = errorResult(fmt.Sprintf("Error: internal fault in %s: %v", name, r))
		}
	}()

	// A call with no argument bag at all never reaches validation. This is
	// distinct from an empty-but-present bag, which proceeds normally.
	if args == nil {
		return errorResult("No arguments provided")
	}

	entry, ok := d.catalog.lookup(name)
	if !ok {
		logger.Warn().Str("tool", name).Msg("Unknown tool requested")
		return errorResult("Unknown tool: " + name)
	}

	req, skip, err := entry.build(args)
	if err != nil {
		return errorResult("Error: " + err.Error())
	}
	if req == nil {
		return textResult(skip)
	}

	start := time.Now()
	body, err := d.client.do(ctx, req)
	if err != nil {
		logger.Error().Err(err).Str("tool", name).Dur("elapsed", time.Since(start)).Msg("Tool call failed")
		return errorResult("Error: " + err.Error())
	}

	logger.Info().Str("tool", name).Dur("elapsed", time.Since(start)).Msg("Tool call complete")
	return textResult(formatResponse(entry.label, body))
}

// handlerFor adapts a catalog entry into an mcp-go tool handler. A missing
// arguments object maps to a nil bag so the dispatcher can distinguish it
// from an empty one.
func (d *Dispatcher) handlerFor(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if request.Params.Arguments != nil {
			args, _ = request.Params.Arguments.(map[string]any)
			if args == nil {
				args = map[string]any{}
			}
		}
		return d.Call(ctx, name, args), nil
	}
}

// registerTools registers every catalog entry on the MCP server in
// declaration order, wiring each to the dispatcher.
func registerTools(s *server.MCPServer, d *Dispatcher) {
	for _, entry := range d.catalog.list() {
		s.AddTool(entry.tool, d.handlerFor(entry.tool.Name))
	}
}
