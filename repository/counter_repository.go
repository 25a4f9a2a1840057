package repository

import (
	"context"
	"time"
)

// CounterRepository keeps fixed-window counters. The window starts with the
// first increment of a key and the count resets once it expires.
type CounterRepository interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
