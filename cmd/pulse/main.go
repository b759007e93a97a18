// Pulse: a personal wellbeing journal.
//
// Pulse records energy ratings and sleep over time and serves them to AI
// assistants as an MCP server, or directly from the command line.
//
// Usage:
//
//	pulse serve          # Start MCP server (stdio transport)
//	pulse energy 4       # Log an energy rating
//	pulse sleep 7.5      # Log a night of sleep
//	pulse history energy # Browse logged entries by day
//	pulse summary sleep  # Rolling 7-day statistics
package main

func main() {
	Execute()
}
