package logtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/nvaldez/pulse/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryTool handles the wellbeing_history MCP tool.
type HistoryTool struct {
	journal *journal.Journal
}

// NewHistoryTool creates a HistoryTool with the given journal.
func NewHistoryTool(j *journal.Journal) *HistoryTool {
	return &HistoryTool{journal: j}
}

// Definition returns the MCP tool definition for wellbeing_history.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("wellbeing_history",
		mcp.WithDescription(
			"Browse logged wellbeing entries grouped by day, most recent day first. "+
				"Days are labeled Today, Yesterday, or the full date.",
		),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Which records to show: energy or sleep"),
			mcp.Enum(KindValues()...),
		),
	)
}

// Handle processes the wellbeing_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch req.GetString("kind", "") {
	case KindEnergy:
		buckets, err := t.journal.EnergyHistory()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("wellbeing_history: %v", err)), nil
		}
		return mcp.NewToolResultText(formatEnergyHistory(buckets)), nil

	case KindSleep:
		buckets, err := t.journal.SleepHistory()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("wellbeing_history: %v", err)), nil
		}
		return mcp.NewToolResultText(formatSleepHistory(buckets)), nil

	default:
		return mcp.NewToolResultError("'kind' must be energy or sleep"), nil
	}
}

func formatEnergyHistory(buckets []journal.DayBucket[journal.EnergyRecord]) string {
	if len(buckets) == 0 {
		return "No energy entries logged yet."
	}

	var b strings.Builder
	for _, bucket := range buckets {
		fmt.Fprintf(&b, "## %s\n", bucket.Label)
		for _, rec := range bucket.Records {
			fmt.Fprintf(&b, "- %s  energy %d/5\n", clock(rec.LoggedAt), rec.Rating)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSleepHistory(buckets []journal.DayBucket[journal.SleepRecord]) string {
	if len(buckets) == 0 {
		return "No sleep entries logged yet."
	}

	var b strings.Builder
	for _, bucket := range buckets {
		fmt.Fprintf(&b, "## %s\n", bucket.Label)
		for _, rec := range bucket.Records {
			fmt.Fprintf(&b, "- %s  %s\n", clock(rec.LoggedAt), describeSleep(rec))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
