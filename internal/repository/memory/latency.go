package memory

import (
	"context"
	"time"
)

// Latency is the artificial delay applied to each operation to emulate a network hop
type Latency struct {
	FindAll   time.Duration
	FindByID  time.Duration
	FindWhere time.Duration
	Create    time.Duration
	Update    time.Duration
	Delete    time.Duration
}

// DefaultLatency mirrors the round-trip times the registry front-end was tuned against
func DefaultLatency() Latency {
	return Latency{
		FindAll:   300 * time.Millisecond,
		FindByID:  200 * time.Millisecond,
		FindWhere: 200 * time.Millisecond,
		Create:    400 * time.Millisecond,
		Update:    350 * time.Millisecond,
		Delete:    250 * time.Millisecond,
	}
}

// NoLatency disables the artificial delay
func NoLatency() Latency {
	return Latency{}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
