package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EffectKind tags what a purchased upgrade does to the economy.
type EffectKind string

const (
	EffectRate       EffectKind = "rate"       // adds Value to the production rate per purchase
	EffectMultiplier EffectKind = "multiplier" // multiplies the global multiplier by (1 + Value) per purchase
	EffectUnlock     EffectKind = "unlock"     // sets a named flag, no economic effect
)

// RewardType tags how an event option pays out.
type RewardType string

const (
	RewardMult   RewardType = "mult"   // multiplies currency by Value (applied after a short delay)
	RewardFlat   RewardType = "flat"   // adds Value to currency
	RewardTokens RewardType = "tokens" // adds Value prestige tokens
)

type ShopKind string

const (
	ShopRush         ShopKind = "rush"          // next prestige pays 3x tokens, consumed on use
	ShopPermDoubler  ShopKind = "perm_doubler"  // prestige permanently pays 2x tokens
	ShopAutoPrestige ShopKind = "auto_prestige" // unlocks the auto-prestige trigger
)

// Variant is the full immutable configuration for one game flavor.
// It is built once (Default() or Load) and never mutated by the engine.
type Variant struct {
	Key            string `yaml:"key" json:"key"`
	Name           string `yaml:"name" json:"name"`
	CurrencyName   string `yaml:"currency_name" json:"currency_name"`
	CurrencySymbol string `yaml:"currency_symbol" json:"currency_symbol"`

	Balance Balance `yaml:"balance" json:"balance"`

	// LevelThresholds is cumulative-earnings per level, index = level.
	// Index 0 is unused (level never reports 0); entries strictly increase.
	LevelThresholds []float64 `yaml:"level_thresholds" json:"level_thresholds"`

	// Tiers label groups of five levels; the last tier is open-ended.
	Tiers []Tier `yaml:"tiers" json:"tiers"`

	// Upgrades per category, ordered by unlock level.
	Upgrades map[string][]Upgrade `yaml:"upgrades" json:"upgrades"`

	// EventPools is tier-indexed (EventPools[0] = tier 1).
	EventPools [][]Event `yaml:"event_pools" json:"event_pools"`

	TokenShop []ShopItem `yaml:"token_shop" json:"token_shop"`
}

// Balance holds the tuning knobs shared by every variant.
type Balance struct {
	ClickPower       float64 `yaml:"click_power" json:"click_power"`
	ComboTimeoutMs   int     `yaml:"combo_timeout_ms" json:"combo_timeout_ms"`
	ComboStep        float64 `yaml:"combo_step" json:"combo_step"`
	CostGrowth       float64 `yaml:"cost_growth" json:"cost_growth"`
	EventChance      float64 `yaml:"event_chance" json:"event_chance"`
	EventCooldownSec int     `yaml:"event_cooldown_sec" json:"event_cooldown_sec"`
	RewardDelayMs    int     `yaml:"reward_delay_ms" json:"reward_delay_ms"`
	MaxTickSeconds   float64 `yaml:"max_tick_seconds" json:"max_tick_seconds"`

	PrestigeUnlockLevel int         `yaml:"prestige_unlock_level" json:"prestige_unlock_level"`
	AutoPrestigeLevel   int         `yaml:"auto_prestige_level" json:"auto_prestige_level"`
	TokenSteps          []TokenStep `yaml:"token_steps" json:"token_steps"`
	MultiplierPerToken  float64     `yaml:"multiplier_per_token" json:"multiplier_per_token"`
}

// TokenStep awards Tokens when prestiging at or above Level; the highest
// applicable step wins.
type TokenStep struct {
	Level  int `yaml:"level" json:"level"`
	Tokens int `yaml:"tokens" json:"tokens"`
}

type Tier struct {
	Name        string `yaml:"name" json:"name"`
	Role        string `yaml:"role" json:"role"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type Upgrade struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	BaseCost    float64 `yaml:"base_cost" json:"base_cost"`
	UnlockLevel int     `yaml:"unlock_level" json:"unlock_level"`
	Effect      Effect  `yaml:"effect" json:"effect"`

	// OneShotBonus multiplies the global multiplier by (1 + bonus) exactly
	// once, on the first purchase of this id ever (survives prestige).
	OneShotBonus float64 `yaml:"one_shot_bonus,omitempty" json:"one_shot_bonus,omitempty"`

	// PathChoice, when set, prompts a one-time binary branch on first purchase.
	PathChoice *PathChoice `yaml:"path_choice,omitempty" json:"path_choice,omitempty"`
}

type Effect struct {
	Kind  EffectKind `yaml:"kind" json:"kind"`
	Value float64    `yaml:"value" json:"value"`
	Flag  string     `yaml:"flag,omitempty" json:"flag,omitempty"`
}

type PathChoice struct {
	Prompt  string       `yaml:"prompt" json:"prompt"`
	Options []PathOption `yaml:"options" json:"options"`
}

type PathOption struct {
	Key   string  `yaml:"key" json:"key"`
	Label string  `yaml:"label" json:"label"`
	Bonus float64 `yaml:"bonus" json:"bonus"` // global multiplier × (1 + bonus)
}

type Event struct {
	ID      string        `yaml:"id" json:"id"`
	Title   string        `yaml:"title" json:"title"`
	Weight  int           `yaml:"weight" json:"weight"`
	Options []EventOption `yaml:"options" json:"options"`
}

type EventOption struct {
	Text         string     `yaml:"text" json:"text"`
	CostFraction float64    `yaml:"cost_fraction,omitempty" json:"cost_fraction,omitempty"`
	RewardType   RewardType `yaml:"reward_type" json:"reward_type"`
	RewardValue  float64    `yaml:"reward_value" json:"reward_value"`
}

type ShopItem struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Cost        int      `yaml:"cost" json:"cost"`
	Kind        ShopKind `yaml:"kind" json:"kind"`
}

func (b *Balance) ApplyDefaults() {
	if b.ClickPower == 0 {
		b.ClickPower = 1
	}
	if b.ComboTimeoutMs == 0 {
		b.ComboTimeoutMs = 800
	}
	if b.ComboStep == 0 {
		b.ComboStep = 0.1
	}
	if b.CostGrowth == 0 {
		b.CostGrowth = 1.15
	}
	if b.EventChance == 0 {
		b.EventChance = 0.001
	}
	if b.EventCooldownSec == 0 {
		b.EventCooldownSec = 60
	}
	if b.RewardDelayMs == 0 {
		b.RewardDelayMs = 2000
	}
	if b.MaxTickSeconds == 0 {
		b.MaxTickSeconds = 5
	}
	if b.PrestigeUnlockLevel == 0 {
		b.PrestigeUnlockLevel = 10
	}
	if b.AutoPrestigeLevel == 0 {
		b.AutoPrestigeLevel = 20
	}
	if len(b.TokenSteps) == 0 {
		b.TokenSteps = []TokenStep{
			{Level: 5, Tokens: 1},
			{Level: 10, Tokens: 2},
			{Level: 15, Tokens: 3},
			{Level: 20, Tokens: 5},
			{Level: 25, Tokens: 8},
		}
	}
	if b.MultiplierPerToken == 0 {
		b.MultiplierPerToken = 0.1
	}
}

func (v *Variant) ApplyDefaults() {
	v.Balance.ApplyDefaults()
	if len(v.LevelThresholds) == 0 {
		v.LevelThresholds = DefaultLevelThresholds()
	}
}

// Validate rejects variants the engine cannot run on. Load calls it; call it
// yourself on hand-built variants.
func (v *Variant) Validate() error {
	if len(v.LevelThresholds) < 2 {
		return fmt.Errorf("variant %s: need at least 2 level thresholds", v.Key)
	}
	for i := 1; i < len(v.LevelThresholds); i++ {
		if v.LevelThresholds[i] <= v.LevelThresholds[i-1] {
			return fmt.Errorf("variant %s: level thresholds must strictly increase (index %d)", v.Key, i)
		}
	}

	seen := map[string]bool{}
	for cat, ups := range v.Upgrades {
		for _, u := range ups {
			if u.ID == "" {
				return fmt.Errorf("variant %s: upgrade in category %s has empty id", v.Key, cat)
			}
			if seen[u.ID] {
				return fmt.Errorf("variant %s: duplicate upgrade id %s", v.Key, u.ID)
			}
			seen[u.ID] = true
			if u.BaseCost <= 0 {
				return fmt.Errorf("variant %s: upgrade %s has non-positive base cost", v.Key, u.ID)
			}
			switch u.Effect.Kind {
			case EffectRate, EffectMultiplier, EffectUnlock:
			default:
				return fmt.Errorf("variant %s: upgrade %s has unknown effect kind %q", v.Key, u.ID, u.Effect.Kind)
			}
			if u.PathChoice != nil && len(u.PathChoice.Options) != 2 {
				return fmt.Errorf("variant %s: upgrade %s path choice must have exactly 2 options", v.Key, u.ID)
			}
		}
	}

	for ti, pool := range v.EventPools {
		if len(pool) == 0 {
			return fmt.Errorf("variant %s: tier %d event pool is empty", v.Key, ti+1)
		}
		total := 0
		for _, ev := range pool {
			if ev.Weight > 0 {
				total += ev.Weight
			}
			if len(ev.Options) < 2 {
				return fmt.Errorf("variant %s: event %s needs at least 2 options", v.Key, ev.ID)
			}
			for _, o := range ev.Options {
				if o.CostFraction < 0 || o.CostFraction > 1 {
					return fmt.Errorf("variant %s: event %s option cost fraction out of [0,1]", v.Key, ev.ID)
				}
				switch o.RewardType {
				case RewardMult, RewardFlat, RewardTokens:
				default:
					return fmt.Errorf("variant %s: event %s has unknown reward type %q", v.Key, ev.ID, o.RewardType)
				}
			}
		}
		if total <= 0 {
			return fmt.Errorf("variant %s: tier %d event pool has no positive weights", v.Key, ti+1)
		}
	}

	return nil
}

// MaxLevel is the highest level the threshold table can produce.
func (v *Variant) MaxLevel() int {
	return len(v.LevelThresholds) - 1
}

// FindUpgrade looks an upgrade up by id within a category.
func (v *Variant) FindUpgrade(category, id string) (Upgrade, bool) {
	for _, u := range v.Upgrades[category] {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

// AllUpgrades returns every upgrade definition across categories.
func (v *Variant) AllUpgrades() []Upgrade {
	out := []Upgrade{}
	for _, ups := range v.Upgrades {
		out = append(out, ups...)
	}
	return out
}

func (v *Variant) FindShopItem(id string) (ShopItem, bool) {
	for _, it := range v.TokenShop {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// Load reads a variant from a yaml file, fills defaults and validates it.
func Load(path string) (*Variant, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v Variant
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("parse variant %s: %w", path, err)
	}
	v.ApplyDefaults()
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}
