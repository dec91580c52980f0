// Package domain exposes the chartlab computations as MCP tools.
//
// Each tool is a pair of a schema constructor and a typed handler; the
// handlers call the same quantum and nba packages the web panels use, so a
// tool result matches what the corresponding figure shows.
package domain
