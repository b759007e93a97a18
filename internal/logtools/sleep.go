package logtools

import (
	"context"
	"fmt"
	"time"

	"github.com/nvaldez/pulse/internal/feedback"
	"github.com/nvaldez/pulse/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// LogSleepTool handles the log_sleep MCP tool.
type LogSleepTool struct {
	journal *journal.Journal
	banner  *feedback.Banner
}

// NewLogSleepTool creates a LogSleepTool with the given journal.
func NewLogSleepTool(j *journal.Journal, banner *feedback.Banner) *LogSleepTool {
	return &LogSleepTool{journal: j, banner: banner}
}

// Definition returns the MCP tool definition for log_sleep.
func (t *LogSleepTool) Definition() mcp.Tool {
	return mcp.NewTool("log_sleep",
		mcp.WithDescription(
			"Log a night of sleep: hours slept, optionally whether it was interrupted and the bedtime. "+
				"If another sleep entry exists within the last 4 hours the call reports a conflict instead "+
				"of saving; call again with on_conflict='replace' or on_conflict='cancel'.",
		),
		mcp.WithNumber("hours",
			mcp.Required(),
			mcp.Description("Hours slept, 0-24 (fractions allowed, e.g. 7.5)"),
		),
		mcp.WithString("interrupted",
			mcp.Description("Whether sleep was interrupted: yes, no, or unspecified (default)"),
			mcp.Enum(string(journal.InterruptedYes), string(journal.InterruptedNo), string(journal.InterruptedUnspecified)),
		),
		mcp.WithString("bedtime",
			mcp.Description("Bedtime as wall-clock time, e.g. 22:45. Time-of-day only; independent of hours slept."),
		),
		mcp.WithString("on_conflict",
			mcp.Description("Resolution for a previously reported conflict: replace or cancel"),
			mcp.Enum(OnConflictValues()...),
		),
	)
}

// Handle processes the log_sleep tool call.
func (t *LogSleepTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	request := journal.SleepRequest{
		HoursSlept:  floatArg(req, "hours", -1),
		Interrupted: journal.ParseInterruption(req.GetString("interrupted", "")),
	}

	if s := req.GetString("bedtime", ""); s != "" {
		bedtime, err := parseBedtime(s)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("log_sleep: %v", err)), nil
		}
		request.Bedtime = &bedtime
	}

	switch req.GetString("on_conflict", "") {
	case OnConflictCancel:
		return mcp.NewToolResultText("Cancelled — nothing was saved, the existing entry is unchanged."), nil

	case OnConflictReplace:
		out, err := t.journal.ProposeSleep(request)
		if err != nil {
			return errorResult("log_sleep", err), nil
		}
		// No surviving conflict means the entry was inserted directly;
		// only an actual swap is reported as a replacement.
		if out.Conflict == nil {
			t.banner.Show(savedMessage(out.Inserted.LoggedAt))
			return mcp.NewToolResultText(fmt.Sprintf("%s saved at %s.", describeSleep(*out.Inserted), clock(out.Inserted.LoggedAt))), nil
		}
		rec, err := t.journal.ReplaceSleep(out.Conflict.ID, request)
		if err != nil {
			return errorResult("log_sleep", err), nil
		}
		t.banner.Show(savedMessage(rec.LoggedAt))
		return mcp.NewToolResultText(fmt.Sprintf("Replaced: %s saved at %s.", describeSleep(*rec), clock(rec.LoggedAt))), nil

	default:
		out, err := t.journal.ProposeSleep(request)
		if err != nil {
			return errorResult("log_sleep", err), nil
		}
		if out.Conflict != nil {
			return mcp.NewToolResultText(fmt.Sprintf(
				"Conflict: %s was already logged at %s (within the 4-hour window).\n"+
					"Call log_sleep again with on_conflict='replace' to swap it for the new entry, "+
					"or on_conflict='cancel' to keep the existing one.",
				describeSleep(*out.Conflict), clock(out.Conflict.LoggedAt),
			)), nil
		}
		t.banner.Show(savedMessage(out.Inserted.LoggedAt))
		return mcp.NewToolResultText(fmt.Sprintf("%s saved at %s.", describeSleep(*out.Inserted), clock(out.Inserted.LoggedAt))), nil
	}
}

// parseBedtime reads a wall-clock "HH:MM" string. Only the time of day is
// meaningful; the date component is anchored to today for storage.
func parseBedtime(s string) (time.Time, error) {
	parsed, err := time.ParseInLocation("15:04", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bedtime must be HH:MM, got %q", s)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.Local), nil
}

// describeSleep renders a one-line description of a sleep record.
func describeSleep(rec journal.SleepRecord) string {
	s := fmt.Sprintf("Sleep %.1fh", rec.HoursSlept)
	switch rec.Interrupted {
	case journal.InterruptedYes:
		s += " (interrupted)"
	case journal.InterruptedNo:
		s += " (uninterrupted)"
	}
	if rec.Bedtime != nil {
		s += fmt.Sprintf(", bedtime %s", clock(*rec.Bedtime))
	}
	return s
}
