package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/segboard/internal/dashboard"
	"github.com/ganot/segboard/internal/domain/segment"
)

// Dashboard defines the rendering operations exposed as MCP tools.
type Dashboard interface {
	Personas(ctx context.Context) ([]string, error)
	View(ctx context.Context, selection []string) (*dashboard.View, error)
	Summaries(ctx context.Context, selection []string) ([]segment.Summary, error)
}

// Config contains server configuration.
type Config struct {
	Dashboard Dashboard
	Logger    *slog.Logger
}

const serverInstructions = `Read-only access to an RFM customer-segmentation
dashboard. Use list_personas to discover the customer personas, then
get_segment_summary or get_dashboard to retrieve aggregates for a selection.
Omitting the personas argument selects every persona. The dataset is
precomputed upstream; nothing here mutates it.`

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "segboard",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Dashboard)

	return server
}
