package logtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/nvaldez/pulse/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// SummaryTool handles the wellbeing_summary MCP tool.
type SummaryTool struct {
	journal *journal.Journal
}

// NewSummaryTool creates a SummaryTool with the given journal.
func NewSummaryTool(j *journal.Journal) *SummaryTool {
	return &SummaryTool{journal: j}
}

// Definition returns the MCP tool definition for wellbeing_summary.
func (t *SummaryTool) Definition() mcp.Tool {
	return mcp.NewTool("wellbeing_summary",
		mcp.WithDescription(
			"Show rolling statistics for the last 7 days: entry count, mean, a per-day trend, "+
				"and a positive/neutral/negative classification of the mean.",
		),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Which records to summarize: energy or sleep"),
			mcp.Enum(KindValues()...),
		),
	)
}

// Handle processes the wellbeing_summary tool call.
func (t *SummaryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := req.GetString("kind", "")

	var (
		summary journal.Summary
		err     error
		unit    string
	)
	switch kind {
	case KindEnergy:
		summary, err = t.journal.EnergySummary()
		unit = "rating"
	case KindSleep:
		summary, err = t.journal.SleepSummary()
		unit = "hours"
	default:
		return mcp.NewToolResultError("'kind' must be energy or sleep"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("wellbeing_summary: %v", err)), nil
	}

	return mcp.NewToolResultText(formatSummary(kind, unit, summary, t.journal.Config().SummaryWindowDays)), nil
}

func formatSummary(kind, unit string, s journal.Summary, windowDays int) string {
	titles := map[string]string{KindEnergy: "Energy", KindSleep: "Sleep"}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s — last %d days\n\n", titles[kind], windowDays)
	fmt.Fprintf(&b, "- **Entries**: %d\n", s.Count)
	fmt.Fprintf(&b, "- **Mean %s**: %.2f\n", unit, s.Mean)
	fmt.Fprintf(&b, "- **Band**: %s\n", s.Band)

	if len(s.Trend) > 0 {
		b.WriteString("\n### Trend\n")
		for _, p := range s.Trend {
			fmt.Fprintf(&b, "- %s: %.2f\n", p.Day.Format("2006-01-02"), p.Mean)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
