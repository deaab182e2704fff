package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVariantValidates(t *testing.T) {
	v := Default()
	require.NoError(t, v.Validate())

	assert.Equal(t, "syndicate", v.Key)
	assert.Equal(t, 32, v.MaxLevel())
	assert.Len(t, v.EventPools, 5)
	assert.Len(t, v.Tiers, 6)
	assert.Len(t, v.TokenShop, 3)
}

func TestBalanceDefaults(t *testing.T) {
	var b Balance
	b.ApplyDefaults()

	assert.Equal(t, float64(1), b.ClickPower)
	assert.Equal(t, 800, b.ComboTimeoutMs)
	assert.Equal(t, 1.15, b.CostGrowth)
	assert.Equal(t, 0.001, b.EventChance)
	assert.Equal(t, 60, b.EventCooldownSec)
	assert.Equal(t, 10, b.PrestigeUnlockLevel)
	assert.Len(t, b.TokenSteps, 5)
}

func TestBalanceDefaultsKeepExplicitValues(t *testing.T) {
	b := Balance{ClickPower: 3, CostGrowth: 1.2}
	b.ApplyDefaults()

	assert.Equal(t, float64(3), b.ClickPower)
	assert.Equal(t, 1.2, b.CostGrowth)
	assert.Equal(t, 800, b.ComboTimeoutMs)
}

func TestThresholdsStrictlyIncrease(t *testing.T) {
	ts := DefaultLevelThresholds()
	require.Len(t, ts, 33)
	for i := 1; i < len(ts); i++ {
		assert.Greater(t, ts[i], ts[i-1], "index %d", i)
	}
}

func TestValidateRejectsBadVariants(t *testing.T) {
	t.Run("duplicate upgrade id", func(t *testing.T) {
		v := Default()
		v.Upgrades["production"] = append(v.Upgrades["production"], Upgrade{
			ID: "young_dealer", BaseCost: 10, Effect: Effect{Kind: EffectRate, Value: 1},
		})
		assert.Error(t, v.Validate())
	})

	t.Run("non-positive base cost", func(t *testing.T) {
		v := Default()
		v.Upgrades["production"][0].BaseCost = 0
		assert.Error(t, v.Validate())
	})

	t.Run("unknown effect kind", func(t *testing.T) {
		v := Default()
		v.Upgrades["production"][0].Effect.Kind = "banana"
		assert.Error(t, v.Validate())
	})

	t.Run("non-increasing thresholds", func(t *testing.T) {
		v := Default()
		v.LevelThresholds[5] = v.LevelThresholds[4]
		assert.Error(t, v.Validate())
	})

	t.Run("empty event pool", func(t *testing.T) {
		v := Default()
		v.EventPools[2] = nil
		assert.Error(t, v.Validate())
	})

	t.Run("pool with no positive weight", func(t *testing.T) {
		v := Default()
		for i := range v.EventPools[0] {
			v.EventPools[0][i].Weight = 0
		}
		assert.Error(t, v.Validate())
	})

	t.Run("cost fraction out of range", func(t *testing.T) {
		v := Default()
		v.EventPools[0][0].Options[0].CostFraction = 1.5
		assert.Error(t, v.Validate())
	})

	t.Run("path choice needs two options", func(t *testing.T) {
		v := Default()
		u, ok := v.FindUpgrade("distribution", "dark_web_market")
		require.True(t, ok)
		require.NotNil(t, u.PathChoice)
		for i, du := range v.Upgrades["distribution"] {
			if du.ID == "dark_web_market" {
				v.Upgrades["distribution"][i].PathChoice = &PathChoice{
					Options: []PathOption{{Key: "only"}},
				}
			}
		}
		assert.Error(t, v.Validate())
	})
}

func TestFindUpgrade(t *testing.T) {
	v := Default()

	u, ok := v.FindUpgrade("production", "poznan_hub")
	require.True(t, ok)
	assert.Equal(t, 0.15, u.OneShotBonus)

	_, ok = v.FindUpgrade("production", "missing")
	assert.False(t, ok)

	_, ok = v.FindUpgrade("missing_category", "young_dealer")
	assert.False(t, ok)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "variant.yaml")
	doc := `
key: cartel
name: The Cartel
currency_name: Pesos
currency_symbol: P
balance:
  click_power: 2
upgrades:
  production:
    - id: runner
      name: Runner
      base_cost: 10
      unlock_level: 1
      effect: {kind: rate, value: 0.5}
event_pools:
  - - id: e1
      title: Border Check
      weight: 10
      options:
        - {text: Bribe, cost_fraction: 0.1, reward_type: mult, reward_value: 1.2}
        - {text: Wait, reward_type: mult, reward_value: 1.0}
token_shop:
  - {id: doubler, title: Doubler, cost: 10, kind: rush}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	v, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cartel", v.Key)
	assert.Equal(t, float64(2), v.Balance.ClickPower)
	// untouched knobs fall back to defaults
	assert.Equal(t, 1.15, v.Balance.CostGrowth)
	assert.Len(t, v.LevelThresholds, 33)

	u, ok := v.FindUpgrade("production", "runner")
	require.True(t, ok)
	assert.Equal(t, 0.5, u.Effect.Value)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	doc := `
key: broken
upgrades:
  production:
    - id: x
      base_cost: -5
      effect: {kind: rate, value: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
