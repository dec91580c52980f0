// Package timeouts defines shared timeout constants used across chartlab
// commands so HTTP, gRPC and shutdown budgets stay in one place.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the health endpoint.
const GRPCDial = 2 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Render caps the time spent producing one chart or table fragment.
const Render = 10 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second
