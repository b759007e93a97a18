package resources

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nvaldez/pulse/internal/feedback"
	"github.com/nvaldez/pulse/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTestJournal(t *testing.T) *journal.Journal {
	t.Helper()
	j, err := journal.New(journal.Config{
		DataDir:           t.TempDir(),
		EnergyWindow:      10 * time.Minute,
		SleepWindow:       4 * time.Hour,
		SummaryWindowDays: 7,
	})
	if err != nil {
		t.Fatalf("failed to create test journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestHandleStatus_ReportsCountsAndConfirmation(t *testing.T) {
	j := newTestJournal(t)
	banner := feedback.New()
	handler := NewHandler(j, banner)

	if _, err := j.ProposeEnergy(journal.EnergyRequest{Rating: 4}); err != nil {
		t.Fatal(err)
	}
	banner.Show("Saved at 09:15")

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "pulse://journal/status"

	contents, err := handler.HandleStatus(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleStatus: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("unexpected content type %T", contents[0])
	}
	if text.MIMEType != "application/json" {
		t.Errorf("mime type = %q", text.MIMEType)
	}

	var got struct {
		EnergyRecords int    `json:"energy_records"`
		SleepRecords  int    `json:"sleep_records"`
		Confirmation  string `json:"confirmation"`
	}
	if err := json.Unmarshal([]byte(text.Text), &got); err != nil {
		t.Fatalf("invalid status JSON: %v", err)
	}
	if got.EnergyRecords != 1 || got.SleepRecords != 0 {
		t.Errorf("counts = %+v", got)
	}
	if !strings.Contains(got.Confirmation, "Saved") {
		t.Errorf("confirmation = %q, want pending save message", got.Confirmation)
	}
}

func TestStatusResource_Definition(t *testing.T) {
	handler := NewHandler(newTestJournal(t), feedback.New())
	res := handler.StatusResource()

	if res.URI != "pulse://journal/status" {
		t.Errorf("uri = %q", res.URI)
	}
	if res.MIMEType != "application/json" {
		t.Errorf("mime type = %q", res.MIMEType)
	}
}
