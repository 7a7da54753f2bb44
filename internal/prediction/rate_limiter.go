package prediction

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitedPredictor throttles outbound calls of the wrapped Predictor.
type RateLimitedPredictor struct {
	predictor Predictor
	limiter   *rate.Limiter
}

var _ Predictor = (*RateLimitedPredictor)(nil)

// NewRateLimitedPredictor allows rps calls per second with the given burst.
func NewRateLimitedPredictor(p Predictor, rps float64, burst int) *RateLimitedPredictor {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedPredictor{
		predictor: p,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Predict waits for a token before forwarding. A canceled wait is a transport failure.
func (r *RateLimitedPredictor) Predict(ctx context.Context, date time.Time) (float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, &Error{Kind: KindTransport, Err: fmt.Errorf("rate limit wait canceled: %w", err)}
	}
	return r.predictor.Predict(ctx, date)
}

// Wrap applies the limiter only when rps is positive.
func Wrap(p Predictor, rps float64, burst int) Predictor {
	if rps <= 0 {
		return p
	}
	return NewRateLimitedPredictor(p, rps, burst)
}
