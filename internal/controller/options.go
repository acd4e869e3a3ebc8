package controller

import (
	"time"

	"golang.org/x/time/rate"
)

// Options tune every player connection regardless of transport.
type Options struct {
	WriteTimeout time.Duration
	MaxFrameSize uint32
	MoveRate     rate.Limit
	MoveBurst    int
}

// newLimiter paces inbound messages on one connection. A zero MoveRate
// disables pacing.
func (o Options) newLimiter() *rate.Limiter {
	if o.MoveRate <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := o.MoveBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(o.MoveRate, burst)
}
