package store

import (
	"context"
	"time"

	"tableflip.dev/picklist/pkg/lists"
)

// Recent wraps src so Lists only returns lists updated within window of now.
// Lists without a timestamp are dropped. A zero window returns src unchanged.
func Recent(src Source, window time.Duration, now func() time.Time) Source {
	if window <= 0 {
		return src
	}
	if now == nil {
		now = time.Now
	}
	return &recentSource{Source: src, window: window, now: now}
}

type recentSource struct {
	Source
	window time.Duration
	now    func() time.Time
}

func (r *recentSource) Lists(ctx context.Context) ([]lists.Record, error) {
	all, err := r.Source.Lists(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := r.now().Add(-r.window)
	out := make([]lists.Record, 0, len(all))
	for _, rec := range all {
		if rec.Timestamp.IsZero() || rec.Timestamp.Before(cutoff) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
