package game

import (
	"fmt"

	"github.com/nmatjar/HashEmpire/internal/config"
	"github.com/nmatjar/HashEmpire/internal/telemetry"
)

// LevelFor returns the largest level whose threshold is covered by
// totalEarned, clamped to [1, max]. Levels derive from lifetime earnings
// only; spending never lowers them.
func LevelFor(thresholds []float64, totalEarned float64) int {
	level := 1
	for l := len(thresholds) - 1; l >= 1; l-- {
		if totalEarned >= thresholds[l] {
			level = l
			break
		}
	}
	return level
}

// EventTier maps a level to its event pool, 1-based, capped at maxTier.
// Pools shift every five levels: levels 1-4 draw tier 1, 5-9 tier 2, and so
// on up the table.
func EventTier(level, maxTier int) int {
	t := level/5 + 1
	if t > maxTier {
		t = maxTier
	}
	if t < 1 {
		t = 1
	}
	return t
}

// tierMeta returns the display tier for a level: tiers partition levels in
// blocks of five starting at level 1, the last tier open-ended.
func tierMeta(v *config.Variant, level int) config.Tier {
	if len(v.Tiers) == 0 {
		return config.Tier{}
	}
	idx := (level - 1) / 5
	if idx < 0 {
		idx = 0
	}
	if idx >= len(v.Tiers) {
		idx = len(v.Tiers) - 1
	}
	return v.Tiers[idx]
}

// checkProgress raises the level after any earn, firing level, tier,
// completion and auto-prestige effects. Levels only move up within a run;
// Prestige is the one place that sets them back.
func (e *Engine) checkProgress() {
	s := e.st
	target := LevelFor(e.cfg.LevelThresholds, s.TotalEarned)
	if target <= s.Level {
		return
	}

	oldTier := tierMeta(e.cfg, s.Level)
	for l := s.Level + 1; l <= target; l++ {
		s.Level = l
		e.emit(Note{Kind: NoteLevelUp, Message: fmt.Sprintf("Reached level %d", l), Level: l})
		e.record(telemetry.EventLevelUp, "", float64(l))
	}
	if newTier := tierMeta(e.cfg, s.Level); newTier.Name != oldTier.Name {
		e.emit(Note{Kind: NoteTierUp, Message: newTier.Name, Level: s.Level})
	}

	if s.Level >= e.cfg.MaxLevel() && !s.Completed {
		s.Completed = true
		e.emit(Note{Kind: NoteCompleted, Message: "The threshold table is complete", Level: s.Level})
	}

	if s.ShopOwned["auto_prestige"] && s.AutoPrestigeOn && s.Level >= e.cfg.Balance.AutoPrestigeLevel {
		e.prestigeLocked(true)
	}
}
