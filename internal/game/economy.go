package game

import (
	"time"

	"github.com/nmatjar/HashEmpire/internal/telemetry"
)

type ClickResult struct {
	Gained     float64 `json:"gained"`
	ComboCount int     `json:"combo_count"`
	ComboMult  float64 `json:"combo_multiplier"`
	Currency   float64 `json:"currency"`
	Level      int     `json:"level"`

	// Event is set when this click triggered a random event; the engine
	// blocks further rolls until RespondToEvent is called.
	Event *ActiveEvent `json:"event,omitempty"`
}

// Click applies one manual click: click power scaled by the global
// multiplier and the current combo. Clicks inside the combo window chain;
// a pause resets the chain to one.
func (e *Engine) Click() ClickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	e.fireDueRewards(now)

	timeout := time.Duration(e.cfg.Balance.ComboTimeoutMs) * time.Millisecond
	if e.comboCount == 0 || now.Sub(e.lastClickAt) > timeout {
		e.comboCount = 1
	} else {
		e.comboCount++
	}
	e.lastClickAt = now

	comboMult := 1 + e.cfg.Balance.ComboStep*float64(e.comboCount-1)
	gained := e.cfg.Balance.ClickPower * e.st.GlobalMult * comboMult

	e.st.earn(gained)
	e.st.TotalClicks++
	e.record(telemetry.EventClick, "", gained)
	e.checkProgress()

	res := ClickResult{
		Gained:     gained,
		ComboCount: e.comboCount,
		ComboMult:  comboMult,
		Currency:   e.st.Currency,
		Level:      e.st.Level,
	}
	if ev := e.maybeTriggerEvent(now); ev != nil {
		res.Event = ev
	}
	return res
}

type TickResult struct {
	Gained       float64 `json:"gained"`
	DeltaSeconds float64 `json:"delta_seconds"`
	Clamped      bool    `json:"clamped"`
	Currency     float64 `json:"currency"`
	Level        int     `json:"level"`
}

// Tick accrues passive income for the wall-clock time since the previous
// tick. The delta is clamped to MaxTickSeconds so a long pause pays out at
// most one clamped slice; callers wanting catch-up tick repeatedly.
func (e *Engine) Tick() TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	dt := now.Sub(e.lastTickAt).Seconds()
	e.lastTickAt = now

	res := TickResult{DeltaSeconds: dt}
	if dt < 0 {
		dt = 0
	}
	if max := e.cfg.Balance.MaxTickSeconds; dt > max {
		dt = max
		res.Clamped = true
	}
	res.DeltaSeconds = dt

	gained := e.st.ProductionRate * e.st.GlobalMult * dt
	e.st.earn(gained)
	e.checkProgress()
	e.fireDueRewards(now)

	res.Gained = gained
	res.Currency = e.st.Currency
	res.Level = e.st.Level
	return res
}
