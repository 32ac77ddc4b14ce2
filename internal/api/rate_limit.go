package api

import (
	"context"

	"golang.org/x/time/rate"
)

// UserTokenRPS is the documented request rate allowed for a user token.
const UserTokenRPS = 3

// WithRateLimit paces requests to at most rps per second. Requests wait for
// a slot; none are dropped or retried. rps <= 0 disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
