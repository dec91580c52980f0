package particlebox

import (
	"context"
	"log"
	"net/http"

	"github.com/louisbranch/chartlab/internal/platform/timeouts"
	"github.com/louisbranch/chartlab/internal/quantum/particlebox"
	"github.com/louisbranch/chartlab/internal/random"
	"github.com/louisbranch/chartlab/internal/services/web/platform/observability"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/websocket"
)

// streamBatches is the number of progress messages sent per run.
const streamBatches = 20

// streamHandler replays the rejection sampler of the current figure over a
// websocket. The same seed yields the same accepted positions as the figure.
func (h handlers) streamHandler() http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		defer conn.Close()
		r := conn.Request()
		params, err := parseParams(r.URL.Query(), h.deps.NewSeed)
		if err != nil {
			log.Printf("particle box stream rejected err=%v", err)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Render)
		defer cancel()
		ctx, span := observability.StartSpan(ctx, "particlebox.stream",
			attribute.Int("level", params.Level),
			attribute.Int("points", params.Points),
		)
		batch := max(1, params.Points/streamBatches)
		err = particlebox.Stream(ctx, random.New(params.Seed), params.Points, params.Level, particlebox.Length, batch, func(p particlebox.Progress) error {
			return websocket.JSON.Send(conn, p)
		})
		observability.EndSpan(span, err)
		if err != nil {
			log.Printf("particle box stream stopped level=%d points=%d err=%v", params.Level, params.Points, err)
		}
	})
}
