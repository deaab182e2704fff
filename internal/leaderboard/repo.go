package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// Repository persists ranking entries.
type Repository interface {
	Upsert(ctx context.Context, e Entry) error
	// Top returns up to limit entries ordered by category descending,
	// optionally filtered by empire. Ranks are not assigned here.
	Top(ctx context.Context, category Category, empire string, limit int) ([]Entry, error)
	Count(ctx context.Context, empire string) (int, error)
}

// MemoryRepo is an in-memory ranking store (dev/test use).
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: map[string]Entry{}}
}

func (r *MemoryRepo) Upsert(_ context.Context, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.entries[e.PlayerID]; ok {
		e = mergePeaks(prev, e)
	}
	r.entries[e.PlayerID] = e
	return nil
}

func (r *MemoryRepo) Top(_ context.Context, category Category, empire string, limit int) ([]Entry, error) {
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}

	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if empire != "" && e.Empire != empire {
			continue
		}
		out = append(out, e)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := category.value(out[i]), category.value(out[j])
		if a != b {
			return a > b
		}
		return out[i].PlayerID < out[j].PlayerID // stable order for ties
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) Count(_ context.Context, empire string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if empire == "" {
		return len(r.entries), nil
	}
	n := 0
	for _, e := range r.entries {
		if e.Empire == empire {
			n++
		}
	}
	return n, nil
}

// mergePeaks keeps growing stats at their maximum across reports; a stale
// client can never shrink a board entry.
func mergePeaks(prev, next Entry) Entry {
	if prev.CurrencyPeak > next.CurrencyPeak {
		next.CurrencyPeak = prev.CurrencyPeak
	}
	if prev.ProductionPeak > next.ProductionPeak {
		next.ProductionPeak = prev.ProductionPeak
	}
	if prev.PrestigeCount > next.PrestigeCount {
		next.PrestigeCount = prev.PrestigeCount
	}
	if prev.TotalClicks > next.TotalClicks {
		next.TotalClicks = prev.TotalClicks
	}
	if prev.Level > next.Level {
		next.Level = prev.Level
	}
	if next.Name == "" {
		next.Name = prev.Name
	}
	return next
}
