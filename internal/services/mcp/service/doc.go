// Package service runs the chartlab MCP server.
//
// It loads the NBA dataset with the same loader as the web server, registers
// the domain tools and serves them over stdio.
package service
