package game

import (
	"math"

	"github.com/nmatjar/HashEmpire/internal/config"
	"github.com/nmatjar/HashEmpire/internal/telemetry"
)

// CostOf prices the next copy of an upgrade: base cost scaled by the growth
// factor once per copy already owned, floored to a whole unit.
func CostOf(u config.Upgrade, owned int, growth float64) float64 {
	return math.Floor(u.BaseCost * math.Pow(growth, float64(owned)))
}

type PurchaseResult struct {
	ID             string  `json:"id"`
	Category       string  `json:"category"`
	Owned          int     `json:"owned"`
	Cost           float64 `json:"cost"`
	NextCost       float64 `json:"next_cost"`
	Currency       float64 `json:"currency"`
	ProductionRate float64 `json:"production_rate"`
	GlobalMult     float64 `json:"global_multiplier"`

	// Choice is set on the first purchase of a path-choice upgrade; the
	// buyer owes a ChoosePath call before the branch bonus applies.
	Choice *config.PathChoice `json:"choice,omitempty"`
}

// Buy purchases one copy of an upgrade. Level gates are checked before
// funds so the caller can distinguish "locked" from "too poor".
func (e *Engine) Buy(category, id string) (PurchaseResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	u, ok := e.cfg.FindUpgrade(category, id)
	if !ok {
		return PurchaseResult{}, ErrUnknownUpgrade
	}
	if e.st.Level < u.UnlockLevel {
		return PurchaseResult{}, ErrLockedByLevel
	}

	owned := e.st.Owned[id]
	cost := CostOf(u, owned, e.cfg.Balance.CostGrowth)
	if e.st.Currency < cost {
		return PurchaseResult{}, ErrInsufficientFunds
	}

	e.st.Currency -= cost
	e.st.Owned[id] = owned + 1

	switch u.Effect.Kind {
	case config.EffectRate:
		e.st.recomputeRate(e.cfg)
	case config.EffectMultiplier:
		e.st.GlobalMult *= 1 + u.Effect.Value
	case config.EffectUnlock:
		if u.Effect.Flag != "" {
			e.st.Flags[u.Effect.Flag] = true
		}
	}

	if u.OneShotBonus > 0 && !e.st.OneShotApplied[id] {
		e.st.OneShotApplied[id] = true
		e.st.GlobalMult *= 1 + u.OneShotBonus
	}

	res := PurchaseResult{
		ID:             id,
		Category:       category,
		Owned:          e.st.Owned[id],
		Cost:           cost,
		NextCost:       CostOf(u, e.st.Owned[id], e.cfg.Balance.CostGrowth),
		Currency:       e.st.Currency,
		ProductionRate: e.st.ProductionRate,
		GlobalMult:     e.st.GlobalMult,
	}
	if u.PathChoice != nil && e.st.PathChosen[id] == "" {
		res.Choice = u.PathChoice
		e.emit(Note{Kind: NotePathChoice, Message: u.PathChoice.Prompt, Level: e.st.Level})
	}

	e.record(telemetry.EventUpgradeBought, id, cost)
	return res, nil
}

// ChoosePath walks one branch of a path-choice upgrade. A path is walked
// once ever: the choice and its bonus survive prestige and are never
// offered again.
func (e *Engine) ChoosePath(id, optionKey string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var up *config.Upgrade
	for _, u := range e.cfg.AllUpgrades() {
		if u.ID == id {
			u := u
			up = &u
			break
		}
	}
	if up == nil {
		return ErrUnknownUpgrade
	}
	if up.PathChoice == nil {
		return ErrNoPathChoice
	}
	if e.st.PathChosen[id] != "" {
		return ErrPathAlreadyChosen
	}

	for _, opt := range up.PathChoice.Options {
		if opt.Key == optionKey {
			e.st.PathChosen[id] = optionKey
			e.st.GlobalMult *= 1 + opt.Bonus
			e.record(telemetry.EventPathChosen, id+":"+optionKey, opt.Bonus)
			return nil
		}
	}
	return ErrNoPathChoice
}
