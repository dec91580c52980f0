package particlebox

import (
	"context"
	"math/rand/v2"
)

// Progress reports a rejection sampling run in flight.
type Progress struct {
	Accepted  int       `json:"accepted"`
	Tries     int       `json:"tries"`
	Target    int       `json:"target"`
	Positions []float64 `json:"positions"`
}

// Stream runs the rejection sampler for n points and calls emit after every
// batch accepted positions (and once at the end). Positions holds only the
// points accepted since the previous call. It stops early when ctx is done or
// emit fails.
func Stream(ctx context.Context, rng *rand.Rand, n, p int, length float64, batch int, emit func(Progress) error) error {
	if batch < 1 {
		batch = 1
	}
	progress := Progress{Target: n}
	pending := make([]float64, 0, batch)
	for progress.Accepted < n {
		if err := ctx.Err(); err != nil {
			return err
		}
		progress.Tries++
		x, ok := Try(rng, p, length)
		if !ok {
			continue
		}
		progress.Accepted++
		pending = append(pending, x)
		if len(pending) == batch || progress.Accepted == n {
			progress.Positions = pending
			if err := emit(progress); err != nil {
				return err
			}
			pending = make([]float64, 0, batch)
		}
	}
	return nil
}
