package game

import (
	"fmt"
	"time"
)

// delayedReward is a multiplier payout scheduled by an event response. It
// fires on the first click or tick at/after fireAt.
type delayedReward struct {
	fireAt time.Time
	mult   float64
	source string
}

func (e *Engine) scheduleReward(now time.Time, mult float64, source string) {
	delay := time.Duration(e.cfg.Balance.RewardDelayMs) * time.Millisecond
	e.pending = append(e.pending, delayedReward{
		fireAt: now.Add(delay),
		mult:   mult,
		source: source,
	})
}

// fireDueRewards applies every pending multiplier whose time has come.
// Gains count toward lifetime earnings; a penalty multiplier below one only
// shrinks the balance.
func (e *Engine) fireDueRewards(now time.Time) {
	if len(e.pending) == 0 {
		return
	}
	remaining := e.pending[:0]
	for _, r := range e.pending {
		if r.fireAt.After(now) {
			remaining = append(remaining, r)
			continue
		}
		gain := e.st.Currency * (r.mult - 1)
		if gain > 0 {
			e.st.earn(gain)
			e.checkProgress()
		} else {
			e.st.Currency += gain
		}
		e.emit(Note{Kind: NoteEvent, Message: fmt.Sprintf("%s: x%.2f payout landed", r.source, r.mult)})
	}
	e.pending = remaining
}

// cancelPendingRewards drops scheduled payouts. Used by prestige and reset:
// the payouts reference a pre-reset economy and would be meaningless after.
func (e *Engine) cancelPendingRewards() {
	e.pending = nil
}
