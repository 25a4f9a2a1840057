package http

import (
	"context"
	"time"

	"track-roi/logger"
	"track-roi/repository"
)

type pruner interface {
	Prune()
}

// WindowLimiter allows limit requests per client and window, counting in a
// CounterRepository so several instances can share the same budget.
type WindowLimiter struct {
	counters    repository.CounterRepository
	limit       int64
	window      time.Duration
	keyPrefix   string
	stopCleanup chan struct{}
}

func NewWindowLimiter(
	counters repository.CounterRepository,
	limit int,
	window time.Duration,
	keyPrefix string,
) *WindowLimiter {
	l := &WindowLimiter{
		counters:    counters,
		limit:       int64(limit),
		window:      window,
		keyPrefix:   keyPrefix,
		stopCleanup: make(chan struct{}),
	}
	if p, ok := counters.(pruner); ok {
		go l.cleanupLoop(p)
	}
	return l
}

func (l *WindowLimiter) cleanupLoop(p pruner) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.Prune()
		case <-l.stopCleanup:
			return
		}
	}
}

func (l *WindowLimiter) Stop() {
	close(l.stopCleanup)
}

// Allow fails open when the counter store is unavailable.
func (l *WindowLimiter) Allow(ctx context.Context, key string) bool {
	count, err := l.counters.Increment(ctx, l.keyPrefix+key, l.window)
	if err != nil {
		logger.Warn("Rate limit counter unavailable, allowing request: %v", err)
		return true
	}
	return count <= l.limit
}
