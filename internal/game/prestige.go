package game

import (
	"fmt"

	"github.com/nmatjar/HashEmpire/internal/config"
	"github.com/nmatjar/HashEmpire/internal/telemetry"
)

type PrestigeResult struct {
	TokensAwarded int     `json:"tokens_awarded"`
	TokenBalance  int     `json:"token_balance"`
	PrestigeCount int     `json:"prestige_count"`
	GlobalMult    float64 `json:"global_multiplier"`
	Milestone     string  `json:"milestone,omitempty"`
	Auto          bool    `json:"auto"`
	RushConsumed  bool    `json:"rush_consumed"`
}

// tokensForLevel awards the highest step the level clears. Below the first
// step a prestige would pay nothing, which eligibility already prevents.
func tokensForLevel(steps []config.TokenStep, level int) int {
	best := 0
	for _, s := range steps {
		if level >= s.Level && s.Tokens > best {
			best = s.Tokens
		}
	}
	return best
}

func milestoneFor(count int) string {
	switch count {
	case 1:
		return "Bronze Prestige"
	case 2:
		return "Silver Prestige"
	case 3:
		return "Gold Prestige"
	case 5:
		return "Platinum Prestige"
	case 8:
		return "Diamond Prestige"
	case 13:
		return "Legendary Prestige"
	}
	return ""
}

// Prestige resets the run in exchange for tokens. Lifetime counters,
// one-shot and path history, shop purchases, the completion flag and the
// global multiplier all survive; the run economy (currency, upgrades,
// level) starts over, and the multiplier grows by 0.1 per token awarded.
func (e *Engine) Prestige() (PrestigeResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.Level < e.cfg.Balance.PrestigeUnlockLevel {
		return PrestigeResult{}, ErrIneligiblePrestige
	}
	return e.prestigeLocked(false), nil
}

func (e *Engine) prestigeLocked(auto bool) PrestigeResult {
	s := e.st

	// at most one payout modifier applies; an armed rush beats the doubler
	awarded := tokensForLevel(e.cfg.Balance.TokenSteps, s.Level)
	rushConsumed := false
	if s.RushArmed {
		awarded *= 3
		s.RushArmed = false
		rushConsumed = true
	} else if s.ShopOwned["perm_token_doubler"] {
		awarded *= 2
	}

	s.PrestigeTokens += awarded
	s.LifetimeTokens += awarded
	s.PrestigeCount++

	// the multiplier is never reset; each prestige only pushes it up
	s.GlobalMult += e.cfg.Balance.MultiplierPerToken * float64(awarded)

	// run reset; pending payouts reference the old economy and die with it
	s.Currency = 0
	s.Level = 1
	s.Owned = map[string]int{}
	s.Flags = map[string]bool{}
	s.recomputeRate(e.cfg)

	e.comboCount = 0
	e.active = nil
	e.cancelPendingRewards()

	res := PrestigeResult{
		TokensAwarded: awarded,
		TokenBalance:  s.PrestigeTokens,
		PrestigeCount: s.PrestigeCount,
		GlobalMult:    s.GlobalMult,
		Milestone:     milestoneFor(s.PrestigeCount),
		Auto:          auto,
		RushConsumed:  rushConsumed,
	}

	e.record(telemetry.EventPrestige, "", float64(awarded))
	e.emit(Note{Kind: NotePrestige, Message: fmt.Sprintf("Prestige %d: %d tokens", s.PrestigeCount, awarded)})
	if res.Milestone != "" {
		e.emit(Note{Kind: NoteMilestone, Message: res.Milestone})
	}
	return res
}

// BuyShopItem spends prestige tokens on a token-shop item. Rush items arm a
// consumable; the rest are owned once and forever.
func (e *Engine) BuyShopItem(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.cfg.FindShopItem(id)
	if !ok {
		return ErrUnknownShopItem
	}

	switch item.Kind {
	case config.ShopRush:
		if e.st.RushArmed {
			return ErrAlreadyOwned
		}
	default:
		if e.st.ShopOwned[id] {
			return ErrAlreadyOwned
		}
	}
	if e.st.PrestigeTokens < item.Cost {
		return ErrInsufficientTokens
	}

	e.st.PrestigeTokens -= item.Cost
	if item.Kind == config.ShopRush {
		e.st.RushArmed = true
	} else {
		e.st.ShopOwned[id] = true
	}

	e.record(telemetry.EventShopPurchase, id, float64(item.Cost))
	return nil
}

// SetAutoPrestige toggles the auto-prestige trigger. The unlock has to be
// bought first.
func (e *Engine) SetAutoPrestige(on bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.st.ShopOwned["auto_prestige"] {
		return ErrAutoPrestigeLocked
	}
	e.st.AutoPrestigeOn = on
	return nil
}
