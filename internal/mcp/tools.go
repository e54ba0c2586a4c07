package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/segboard/internal/dashboard"
	"github.com/ganot/segboard/internal/domain/segment"
)

type ListPersonasParams struct{}

type ListPersonasResult struct {
	Personas []string `json:"personas"`
}

type GetSegmentSummaryParams struct {
	Personas []string `json:"personas,omitempty"`
}

type GetSegmentSummaryResult struct {
	Summaries []segment.Summary `json:"summaries"`
}

type GetDashboardParams struct {
	Personas []string `json:"personas,omitempty"`
}

type GetDashboardResult struct {
	View *dashboard.View `json:"view"`
}

func registerTools(server *sdkmcp.Server, svc Dashboard) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_personas",
		Description: "List the customer personas available for filtering",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ ListPersonasParams) (*sdkmcp.CallToolResult, ListPersonasResult, error) {
		personas, err := svc.Personas(ctx)
		if err != nil {
			return nil, ListPersonasResult{}, mapError(err)
		}
		return nil, ListPersonasResult{Personas: personas}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_segment_summary",
		Description: "Get per-persona averages, customer counts, and shares for a persona selection (omit personas for all)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetSegmentSummaryParams) (*sdkmcp.CallToolResult, GetSegmentSummaryResult, error) {
		summaries, err := svc.Summaries(ctx, normalizeSelection(params.Personas))
		if err != nil {
			return nil, GetSegmentSummaryResult{}, mapError(err)
		}
		return nil, GetSegmentSummaryResult{Summaries: summaries}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard",
		Description: "Get the full render-ready dashboard (KPIs, summary table, charts) for a persona selection (omit personas for all)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetDashboardParams) (*sdkmcp.CallToolResult, GetDashboardResult, error) {
		view, err := svc.View(ctx, normalizeSelection(params.Personas))
		if err != nil {
			return nil, GetDashboardResult{}, mapError(err)
		}
		return nil, GetDashboardResult{View: view}, nil
	})
}

// normalizeSelection treats an omitted or empty personas argument as "all
// personas". MCP callers have no separate control for an explicitly empty
// selection, so the empty-selection warning never fires on this surface.
func normalizeSelection(personas []string) []string {
	if len(personas) == 0 {
		return nil
	}
	return personas
}
