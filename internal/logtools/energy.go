package logtools

import (
	"context"
	"fmt"

	"github.com/nvaldez/pulse/internal/feedback"
	"github.com/nvaldez/pulse/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// LogEnergyTool handles the log_energy MCP tool.
type LogEnergyTool struct {
	journal *journal.Journal
	banner  *feedback.Banner
}

// NewLogEnergyTool creates a LogEnergyTool with the given journal.
func NewLogEnergyTool(j *journal.Journal, banner *feedback.Banner) *LogEnergyTool {
	return &LogEnergyTool{journal: j, banner: banner}
}

// Definition returns the MCP tool definition for log_energy.
func (t *LogEnergyTool) Definition() mcp.Tool {
	return mcp.NewTool("log_energy",
		mcp.WithDescription(
			"Log an energy rating on a 1-5 scale. If another energy entry exists within the last "+
				"10 minutes the call reports a conflict instead of saving; call again with "+
				"on_conflict='replace' to swap it for the new rating, or on_conflict='cancel' to keep it.",
		),
		mcp.WithNumber("rating",
			mcp.Required(),
			mcp.Description("Energy rating from 1 (drained) to 5 (energized)"),
		),
		mcp.WithString("on_conflict",
			mcp.Description("Resolution for a previously reported conflict: replace or cancel"),
			mcp.Enum(OnConflictValues()...),
		),
	)
}

// Handle processes the log_energy tool call.
func (t *LogEnergyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rating := intArg(req, "rating", 0)
	request := journal.EnergyRequest{Rating: rating}

	switch req.GetString("on_conflict", "") {
	case OnConflictCancel:
		return mcp.NewToolResultText("Cancelled — nothing was saved, the existing entry is unchanged."), nil

	case OnConflictReplace:
		out, err := t.journal.ProposeEnergy(request)
		if err != nil {
			return errorResult("log_energy", err), nil
		}
		// No surviving conflict means the entry was inserted directly;
		// only an actual swap is reported as a replacement.
		if out.Conflict == nil {
			t.banner.Show(savedMessage(out.Inserted.LoggedAt))
			return mcp.NewToolResultText(fmt.Sprintf("Energy %d/5 saved at %s.", out.Inserted.Rating, clock(out.Inserted.LoggedAt))), nil
		}
		rec, err := t.journal.ReplaceEnergy(out.Conflict.ID, request)
		if err != nil {
			return errorResult("log_energy", err), nil
		}
		t.banner.Show(savedMessage(rec.LoggedAt))
		return mcp.NewToolResultText(fmt.Sprintf("Replaced: energy %d/5 saved at %s.", rec.Rating, clock(rec.LoggedAt))), nil

	default:
		out, err := t.journal.ProposeEnergy(request)
		if err != nil {
			return errorResult("log_energy", err), nil
		}
		if out.Conflict != nil {
			return mcp.NewToolResultText(fmt.Sprintf(
				"Conflict: energy %d/5 was already logged at %s (within the 10-minute window).\n"+
					"Call log_energy again with on_conflict='replace' to swap it for the new rating, "+
					"or on_conflict='cancel' to keep the existing entry.",
				out.Conflict.Rating, clock(out.Conflict.LoggedAt),
			)), nil
		}
		t.banner.Show(savedMessage(out.Inserted.LoggedAt))
		return mcp.NewToolResultText(fmt.Sprintf("Energy %d/5 saved at %s.", out.Inserted.Rating, clock(out.Inserted.LoggedAt))), nil
	}
}
