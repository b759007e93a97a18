// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/resources that depend on them. No business
// logic lives here — only wiring.
package server

import (
	"fmt"

	"github.com/nvaldez/pulse/internal/config"
	"github.com/nvaldez/pulse/internal/feedback"
	"github.com/nvaldez/pulse/internal/journal"
	"github.com/nvaldez/pulse/internal/logtools"
	"github.com/nvaldez/pulse/internal/resources"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools and resources
// registered. This is the single place where all dependencies are resolved.
//
// The returned cleanup function closes the journal's database connection
// and must be called on shutdown (typically via defer). It is always
// non-nil and safe to call.
func New(cfg config.Config, logger *zap.Logger) (*server.MCPServer, func(), error) {
	j, err := journal.New(cfg.Journal())
	if err != nil {
		return nil, noop, fmt.Errorf("opening journal: %w", err)
	}
	cleanup := func() {
		if err := j.Close(); err != nil {
			logger.Warn("journal close", zap.Error(err))
		}
	}

	logger.Info("journal opened",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("energy_window_minutes", cfg.EnergyWindowMinutes),
		zap.Int("sleep_window_hours", cfg.SleepWindowHours),
	)

	banner := feedback.New()

	s := server.NewMCPServer(
		"pulse",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	energyTool := logtools.NewLogEnergyTool(j, banner)
	s.AddTool(energyTool.Definition(), energyTool.Handle)

	sleepTool := logtools.NewLogSleepTool(j, banner)
	s.AddTool(sleepTool.Definition(), sleepTool.Handle)

	historyTool := logtools.NewHistoryTool(j)
	s.AddTool(historyTool.Definition(), historyTool.Handle)

	summaryTool := logtools.NewSummaryTool(j)
	s.AddTool(summaryTool.Definition(), summaryTool.Handle)

	resourceHandler := resources.NewHandler(j, banner)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	return s, cleanup, nil
}

// noop is the default cleanup when journal initialization failed.
func noop() {}

// serverInstructions tells the MCP host how to use the journal tools.
func serverInstructions() string {
	return `You have access to Pulse, a personal wellbeing journal.

## Tools

- log_energy: record an energy rating from 1 (drained) to 5 (energized)
- log_sleep: record a night of sleep (hours, optional interruption flag and bedtime)
- wellbeing_history: browse entries grouped by day, most recent first
- wellbeing_summary: rolling 7-day statistics with a per-day trend

## Duplicate guard

Logging is rate-aware: a second energy entry within 10 minutes, or a second
sleep entry within 4 hours, is reported as a conflict instead of being saved.
The conflict message names the existing entry. Resolve it by repeating the
same call with on_conflict='replace' (swap the old entry for the new one) or
on_conflict='cancel' (keep the old entry, discard the new one). Never resolve
a conflict without asking the user which entry to keep.

## Conventions

- Ratings are integers 1-5; hours slept may be fractional (e.g. 7.5)
- Bedtime is wall-clock HH:MM, independent of hours slept
- All history is grouped by the user's local calendar day`
}
