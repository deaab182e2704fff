package game

import (
	"github.com/nmatjar/HashEmpire/internal/config"
)

// State is the mutable player economy. Everything here persists in saves.
// Fields that survive a prestige reset are marked; the rest are wiped back
// to their starting values by Prestige.
type State struct {
	Currency       float64 `json:"currency"`
	TotalEarned    float64 `json:"total_earned"` // survives: lifetime earnings, drives level
	ProductionRate float64 `json:"production_rate"`
	GlobalMult     float64 `json:"global_multiplier"`
	Level          int     `json:"level"`

	PrestigeCount  int `json:"prestige_count"`  // survives
	PrestigeTokens int `json:"prestige_tokens"` // survives, spendable
	LifetimeTokens int `json:"lifetime_tokens"` // survives, never spent by the shop

	TotalClicks    int64   `json:"total_clicks"`    // survives
	CurrencyPeak   float64 `json:"currency_peak"`   // survives
	ProductionPeak float64 `json:"production_peak"` // survives

	Owned          map[string]int    `json:"owned"`
	OneShotApplied map[string]bool   `json:"one_shot_applied"` // survives: a one-shot bonus fires once ever
	PathChosen     map[string]string `json:"path_chosen"`      // survives: a path is walked once ever
	ShopOwned      map[string]bool   `json:"shop_owned"`       // survives
	Flags          map[string]bool   `json:"flags"`            // unlock-effect flags, wiped on prestige

	RushArmed      bool `json:"rush_armed"`       // survives until consumed
	AutoPrestigeOn bool `json:"auto_prestige_on"` // survives
	Completed      bool `json:"completed"`        // survives: threshold table topped out
}

func NewState() *State {
	return &State{
		Currency:       0,
		GlobalMult:     1,
		Level:          1,
		Owned:          map[string]int{},
		OneShotApplied: map[string]bool{},
		PathChosen:     map[string]string{},
		ShopOwned:      map[string]bool{},
		Flags:          map[string]bool{},
	}
}

// recomputeRate rebuilds ProductionRate from owned rate upgrades. The rate is
// never trusted from a save or mutated incrementally anywhere else.
func (s *State) recomputeRate(v *config.Variant) {
	rate := 0.0
	for _, u := range v.AllUpgrades() {
		if u.Effect.Kind == config.EffectRate {
			rate += float64(s.Owned[u.ID]) * u.Effect.Value
		}
	}
	s.ProductionRate = rate
	if rate > s.ProductionPeak {
		s.ProductionPeak = rate
	}
}

// earn credits currency from any source, tracks lifetime totals and peaks.
// Level-up checks happen in the engine after every earn.
func (s *State) earn(amount float64) {
	if amount <= 0 {
		return
	}
	s.Currency += amount
	s.TotalEarned += amount
	if s.Currency > s.CurrencyPeak {
		s.CurrencyPeak = s.Currency
	}
}
