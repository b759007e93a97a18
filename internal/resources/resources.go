// Package resources implements MCP resource handlers for the wellbeing journal.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (pulse://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nvaldez/pulse/internal/feedback"
	"github.com/nvaldez/pulse/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages journal resource endpoints.
type Handler struct {
	journal *journal.Journal
	banner  *feedback.Banner
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(j *journal.Journal, banner *feedback.Banner) *Handler {
	return &Handler{journal: j, banner: banner}
}

// status is the JSON shape served by the status resource.
type status struct {
	EnergyRecords int    `json:"energy_records"`
	SleepRecords  int    `json:"sleep_records"`
	Confirmation  string `json:"confirmation,omitempty"`
	DataDir       string `json:"data_dir"`
}

// StatusResource returns the MCP resource definition for journal status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"pulse://journal/status",
		"Wellbeing Journal Status",
		mcp.WithResourceDescription("Record counts, data location, and any pending save confirmation"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current journal status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stats, err := h.journal.Stats()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(status{
		EnergyRecords: stats.EnergyRecords,
		SleepRecords:  stats.SleepRecords,
		Confirmation:  h.banner.Message(),
		DataDir:       h.journal.Config().DataDir,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
