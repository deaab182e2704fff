package game

import (
	"fmt"
	"math"
	"time"

	"github.com/nmatjar/HashEmpire/internal/config"
)

const SaveVersion = 1

// SaveDocument is the on-disk shape of one player's progress: a point-in-time
// snapshot of State plus envelope metadata. Runtime-only pieces (combo chain,
// active event, scheduled payouts) are deliberately not saved.
type SaveDocument struct {
	Version int       `json:"version"`
	Variant string    `json:"variant"`
	SavedAt time.Time `json:"saved_at"`
	State   State     `json:"state"`
}

// SaveDocument captures the current progress for persistence.
func (e *Engine) SaveDocument() SaveDocument {
	e.mu.Lock()
	defer e.mu.Unlock()

	cp := *e.st
	cp.Owned = copyIntMap(e.st.Owned)
	cp.OneShotApplied = copyBoolMap(e.st.OneShotApplied)
	cp.PathChosen = copyStringMap(e.st.PathChosen)
	cp.ShopOwned = copyBoolMap(e.st.ShopOwned)
	cp.Flags = copyBoolMap(e.st.Flags)

	return SaveDocument{
		Version: SaveVersion,
		Variant: e.cfg.Key,
		SavedAt: e.clock.Now(),
		State:   cp,
	}
}

// Restore replaces the engine state with a sanitized save. Unknown upgrade
// ids are dropped, numbers forced into valid ranges and the production rate
// rebuilt from owned upgrades, so a tampered or stale file can degrade a
// save but never corrupt the engine.
func (e *Engine) Restore(doc SaveDocument) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if doc.Version <= 0 || doc.Version > SaveVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptSave, doc.Version)
	}
	if doc.Variant != "" && doc.Variant != e.cfg.Key {
		return fmt.Errorf("%w: save is for variant %q, engine runs %q", ErrCorruptSave, doc.Variant, e.cfg.Key)
	}

	st := doc.State
	sanitizeState(&st, e.cfg)

	e.st = &st
	e.comboCount = 0
	e.active = nil
	e.cancelPendingRewards()
	e.lastTickAt = e.clock.Now()
	e.lastEventAt = time.Time{}
	return nil
}

func sanitizeState(s *State, v *config.Variant) {
	s.Currency = cleanNumber(s.Currency)
	s.TotalEarned = cleanNumber(s.TotalEarned)
	s.CurrencyPeak = math.Max(cleanNumber(s.CurrencyPeak), s.Currency)
	s.ProductionPeak = cleanNumber(s.ProductionPeak)
	if s.TotalClicks < 0 {
		s.TotalClicks = 0
	}
	if s.PrestigeCount < 0 {
		s.PrestigeCount = 0
	}
	if s.PrestigeTokens < 0 {
		s.PrestigeTokens = 0
	}
	if s.LifetimeTokens < s.PrestigeTokens {
		s.LifetimeTokens = s.PrestigeTokens
	}

	if s.GlobalMult <= 0 || math.IsNaN(s.GlobalMult) || math.IsInf(s.GlobalMult, 0) {
		s.GlobalMult = 1
	}

	if s.Owned == nil {
		s.Owned = map[string]int{}
	}
	known := map[string]bool{}
	for _, u := range v.AllUpgrades() {
		known[u.ID] = true
	}
	for id, n := range s.Owned {
		if !known[id] || n <= 0 {
			delete(s.Owned, id)
		}
	}
	if s.OneShotApplied == nil {
		s.OneShotApplied = map[string]bool{}
	}
	if s.PathChosen == nil {
		s.PathChosen = map[string]string{}
	}
	if s.ShopOwned == nil {
		s.ShopOwned = map[string]bool{}
	}
	if s.Flags == nil {
		s.Flags = map[string]bool{}
	}

	// level and rate are derived values; never trust the file's copy
	s.Level = LevelFor(v.LevelThresholds, s.TotalEarned)
	s.recomputeRate(v)
}

func cleanNumber(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
