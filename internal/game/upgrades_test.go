package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatjar/HashEmpire/internal/config"
)

func TestCostOfGrowsGeometrically(t *testing.T) {
	u := config.Upgrade{BaseCost: 100}

	assert.Equal(t, float64(100), CostOf(u, 0, 1.15))
	assert.Equal(t, float64(114), CostOf(u, 1, 1.15)) // floor(114.999...), float rounding
	assert.Equal(t, float64(132), CostOf(u, 2, 1.15)) // floor(132.25)
	assert.Equal(t, float64(404), CostOf(u, 10, 1.15))
}

func TestBuyRateUpgradeRecomputesProduction(t *testing.T) {
	e, _ := newTestEngine(quietVariant())
	e.st.Currency = 100

	res, err := e.Buy("production", "young_dealer")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Owned)
	assert.Equal(t, float64(15), res.Cost)
	assert.InDelta(t, 0.1, res.ProductionRate, 1e-9)
	assert.InDelta(t, 85, res.Currency, 1e-9)
	assert.Equal(t, float64(17), res.NextCost) // floor(15*1.15)
}

func TestBuyMultiplierUpgradeCompounds(t *testing.T) {
	e, _ := newTestEngine(quietVariant())
	e.st.Currency = 1e6
	e.st.Level = 3

	_, err := e.Buy("distribution", "encrypted_comms")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, e.Snapshot().GlobalMult, 1e-9)

	_, err = e.Buy("distribution", "encrypted_comms")
	require.NoError(t, err)
	assert.InDelta(t, 2.25, e.Snapshot().GlobalMult, 1e-9)
}

func TestBuyRejectsUnknownUpgrade(t *testing.T) {
	e, _ := newTestEngine(quietVariant())

	_, err := e.Buy("production", "nope")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)

	_, err = e.Buy("nope", "young_dealer")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)
}

func TestBuyRejectsLockedUpgradeBeforeFunds(t *testing.T) {
	e, _ := newTestEngine(quietVariant())
	// broke AND under-leveled: the lock wins
	_, err := e.Buy("production", "street_corner")
	assert.ErrorIs(t, err, ErrLockedByLevel)
}

func TestBuyRejectsInsufficientFunds(t *testing.T) {
	e, _ := newTestEngine(quietVariant())
	e.st.Currency = 14

	_, err := e.Buy("production", "young_dealer")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	// failed purchase leaves everything untouched
	assert.Equal(t, float64(14), e.Snapshot().Currency)
	assert.Zero(t, e.Snapshot().Owned["young_dealer"])
}

func TestOneShotBonusAppliesOnce(t *testing.T) {
	e, _ := newTestEngine(quietVariant())
	e.st.Currency = 1e9
	e.st.Level = 13

	_, err := e.Buy("production", "port_connections")
	require.NoError(t, err)
	assert.InDelta(t, 1.1, e.Snapshot().GlobalMult, 1e-9)

	// second copy: rate applies again, the one-shot does not
	_, err = e.Buy("production", "port_connections")
	require.NoError(t, err)
	assert.InDelta(t, 1.1, e.Snapshot().GlobalMult, 1e-9)
	assert.InDelta(t, 100000, e.Snapshot().ProductionRate, 1e-9)
}

func TestPathChoiceFlow(t *testing.T) {
	e, _ := newTestEngine(quietVariant())
	e.st.Currency = 1e9
	e.st.Level = 12

	res, err := e.Buy("distribution", "dark_web_market")
	require.NoError(t, err)
	require.NotNil(t, res.Choice)
	assert.Len(t, res.Choice.Options, 2)

	// effect applied, branch bonus still pending
	assert.InDelta(t, 1.5, e.Snapshot().GlobalMult, 1e-9)

	require.NoError(t, e.ChoosePath("dark_web_market", "underground"))
	assert.InDelta(t, 1.5*1.3, e.Snapshot().GlobalMult, 1e-9)
	assert.Equal(t, "underground", e.Snapshot().PathChosen["dark_web_market"])

	assert.ErrorIs(t, e.ChoosePath("dark_web_market", "semi_legal"), ErrPathAlreadyChosen)

	// repeat purchases no longer prompt
	res, err = e.Buy("distribution", "dark_web_market")
	require.NoError(t, err)
	assert.Nil(t, res.Choice)
}

func TestChoosePathValidation(t *testing.T) {
	e, _ := newTestEngine(quietVariant())

	assert.ErrorIs(t, e.ChoosePath("nope", "underground"), ErrUnknownUpgrade)
	assert.ErrorIs(t, e.ChoosePath("young_dealer", "underground"), ErrNoPathChoice)
	assert.ErrorIs(t, e.ChoosePath("dark_web_market", "bogus"), ErrNoPathChoice)
}
