package game

import (
	"math/rand"
	"time"

	"github.com/nmatjar/HashEmpire/internal/config"
	"github.com/nmatjar/HashEmpire/internal/telemetry"
)

// ActiveEvent is a triggered random event awaiting a player response. Only
// one can be active; further rolls are suppressed until it resolves.
type ActiveEvent struct {
	Event    config.Event `json:"event"`
	Tier     int          `json:"tier"`
	RolledAt time.Time    `json:"rolled_at"`
}

// PickWeighted draws one event from a pool by positive weight: weights are
// summed, a point in [0,total) is rolled and the pool walked with a running
// sum. Entries with zero or negative weight never win. An all-zero pool
// falls back to a uniform draw.
func PickWeighted(rng *rand.Rand, pool []config.Event) config.Event {
	total := 0
	for _, ev := range pool {
		if ev.Weight > 0 {
			total += ev.Weight
		}
	}
	if total <= 0 {
		return pool[rng.Intn(len(pool))]
	}
	roll := rng.Intn(total)
	acc := 0
	for _, ev := range pool {
		if ev.Weight <= 0 {
			continue
		}
		acc += ev.Weight
		if roll < acc {
			return ev
		}
	}
	return pool[len(pool)-1]
}

// maybeTriggerEvent rolls the per-click event chance, honoring the cooldown
// and the one-active-event rule. Caller holds the engine mutex.
func (e *Engine) maybeTriggerEvent(now time.Time) *ActiveEvent {
	if e.active != nil {
		return nil
	}
	cooldown := time.Duration(e.cfg.Balance.EventCooldownSec) * time.Second
	if !e.lastEventAt.IsZero() && now.Sub(e.lastEventAt) < cooldown {
		return nil
	}
	if len(e.cfg.EventPools) == 0 || e.rng.Float64() >= e.cfg.Balance.EventChance {
		return nil
	}

	tier := EventTier(e.st.Level, len(e.cfg.EventPools))
	ev := PickWeighted(e.rng, e.cfg.EventPools[tier-1])

	e.active = &ActiveEvent{Event: ev, Tier: tier, RolledAt: now}
	e.lastEventAt = now
	e.record(telemetry.EventRandomTriggered, ev.ID, 0)
	e.emit(Note{Kind: NoteEvent, Message: ev.Title, Level: e.st.Level})
	return e.active
}

// ActiveEvent returns the event awaiting a response, or nil.
func (e *Engine) ActiveEvent() *ActiveEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return nil
	}
	cp := *e.active
	return &cp
}

type EventOutcome struct {
	EventID     string            `json:"event_id"`
	Choice      string            `json:"choice"`
	Cost        float64           `json:"cost"`
	RewardType  config.RewardType `json:"reward_type"`
	RewardValue float64           `json:"reward_value"`
	Delayed     bool              `json:"delayed"` // multiplier payouts land after RewardDelayMs
	Currency    float64           `json:"currency"`
}

// RespondToEvent resolves the active event with the chosen option. The cost
// fraction is charged against the current balance immediately; multiplier
// rewards are scheduled, flat and token rewards land at once.
func (e *Engine) RespondToEvent(optionIndex int) (EventOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return EventOutcome{}, ErrNoActiveEvent
	}
	ev := e.active.Event
	if optionIndex < 0 || optionIndex >= len(ev.Options) {
		return EventOutcome{}, ErrBadEventOption
	}
	opt := ev.Options[optionIndex]
	now := e.clock.Now()

	cost := e.st.Currency * opt.CostFraction
	e.st.Currency -= cost

	out := EventOutcome{
		EventID:     ev.ID,
		Choice:      opt.Text,
		Cost:        cost,
		RewardType:  opt.RewardType,
		RewardValue: opt.RewardValue,
	}

	switch opt.RewardType {
	case config.RewardMult:
		// a zero multiplier means "no payout", not "wipe the balance"
		if opt.RewardValue > 0 && opt.RewardValue != 1 {
			e.scheduleReward(now, opt.RewardValue, ev.Title)
			out.Delayed = true
		}
	case config.RewardFlat:
		e.st.earn(opt.RewardValue)
		e.checkProgress()
	case config.RewardTokens:
		n := int(opt.RewardValue)
		e.st.PrestigeTokens += n
		e.st.LifetimeTokens += n
	}

	e.active = nil
	e.lastEventAt = now
	e.record(telemetry.EventRandomResolved, ev.ID, opt.RewardValue)

	out.Currency = e.st.Currency
	return out, nil
}
