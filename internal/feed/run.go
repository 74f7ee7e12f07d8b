package feed

import (
	"context"
	"errors"
	"log"
	"time"
)

// ErrInvalidInterval is returned by Run for non-positive intervals.
var ErrInvalidInterval = errors.New("feed interval must be positive")

// Run samples src every interval and hands each reading to sink until ctx is
// done. The first reading is delivered immediately. sink runs on the calling
// goroutine; hosts with a UI thread must marshal from there.
func Run(ctx context.Context, src Source, interval time.Duration, sink func(Reading)) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	if src == nil || sink == nil {
		return errors.New("feed: nil source or sink")
	}
	start := time.Now()
	emit := func(now time.Time) {
		r := src.Sample(now.Sub(start))
		if isTraceLoggingEnabled() {
			log.Printf("feed: %.2f Hz detected=%v", r.Frequency, r.Detected)
		}
		sink(r)
	}
	emit(start)

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			emit(now)
		}
	}
}
