// Cosmic Cycles: cycle, zodiac and moon insights.
//
// The same binary serves the MCP server over stdio and answers questions
// directly on the command line.
//
// Usage:
//
//	cosmic serve                  # Start MCP server (stdio transport)
//	cosmic today                  # Daily insight for the configured profile
//	cosmic calendar --radius 14   # Cycle calendar around today
//	cosmic profile set --birth-date 1990-03-21 --last-period 2024-01-01
package main

func main() {
	Execute()
}
