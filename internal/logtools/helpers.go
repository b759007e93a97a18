// Package logtools provides MCP tool handlers for the wellbeing journal.
//
// Each tool handler follows the same pattern:
// - A struct with dependencies (journal.Journal, feedback.Banner) injected
//   via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Conflict resolution is a two-step protocol: a plain log call that hits
// the duplicate guard reports the candidate without saving; the caller
// repeats the call with on_conflict set to replace or cancel.
package logtools

import (
	"fmt"
	"time"

	"github.com/nvaldez/pulse/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// on_conflict values.
const (
	OnConflictReplace = "replace"
	OnConflictCancel  = "cancel"
)

// OnConflictValues returns the enum values for MCP tool definitions.
func OnConflictValues() []string {
	return []string{OnConflictReplace, OnConflictCancel}
}

// Record kind values shared by the read-side tools.
const (
	KindEnergy = "energy"
	KindSleep  = "sleep"
)

// KindValues returns the enum values for MCP tool definitions.
func KindValues() []string {
	return []string{KindEnergy, KindSleep}
}

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// floatArg extracts a float argument from a tool request.
func floatArg(req mcp.CallToolRequest, key string, defaultVal float64) float64 {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return v
}

// clock formats an instant as a local wall-clock time.
func clock(t time.Time) string {
	return t.Local().Format("15:04")
}

// savedMessage is the transient confirmation text shown after a save.
// It carries the actual persistence timestamp, never an earlier one.
func savedMessage(at time.Time) string {
	return fmt.Sprintf("Saved at %s", clock(at))
}

// errorResult maps journal errors to tool error results. Validation
// failures read as input problems; store failures must never claim the
// entry was saved.
func errorResult(tool string, err error) *mcp.CallToolResult {
	if journal.IsValidation(err) {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", tool, err))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: entry was NOT saved: %v", tool, err))
}
