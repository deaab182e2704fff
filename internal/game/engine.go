package game

import (
	"hash/fnv"
	"math/rand"
	"sync"
	"time"

	"github.com/nmatjar/HashEmpire/internal/config"
	"github.com/nmatjar/HashEmpire/internal/telemetry"
)

// NoteKind tags engine notifications delivered to the optional notifier.
type NoteKind string

const (
	NoteLevelUp    NoteKind = "level_up"
	NoteTierUp     NoteKind = "tier_up"
	NoteCompleted  NoteKind = "completed"
	NotePrestige   NoteKind = "prestige"
	NoteMilestone  NoteKind = "milestone"
	NoteEvent      NoteKind = "event"
	NotePathChoice NoteKind = "path_choice"
)

type Note struct {
	Kind    NoteKind `json:"kind"`
	Message string   `json:"message"`
	Level   int      `json:"level,omitempty"`
}

// Engine owns one player's economy. All operations take the engine mutex, so
// snapshots and saves always observe a consistent state.
type Engine struct {
	mu  sync.Mutex
	cfg *config.Variant
	st  *State

	clock Clock
	rng   *rand.Rand

	comboCount  int
	lastClickAt time.Time
	lastTickAt  time.Time
	lastEventAt time.Time
	active      *ActiveEvent
	pending     []delayedReward

	notify func(Note)
	tel    telemetry.Repository
}

type Option func(*Engine)

func WithClock(c Clock) Option { return func(e *Engine) { e.clock = c } }

// WithSeed makes event rolls and pool draws deterministic.
func WithSeed(seed string) Option { return func(e *Engine) { e.rng = rngFromSeed(seed) } }

func WithNotifier(fn func(Note)) Option { return func(e *Engine) { e.notify = fn } }

func WithTelemetry(repo telemetry.Repository) Option { return func(e *Engine) { e.tel = repo } }

func NewEngine(cfg *config.Variant, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		st:    NewState(),
		clock: RealClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.lastTickAt = e.clock.Now()
	return e
}

func rngFromSeed(seed string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func (e *Engine) emit(n Note) {
	if e.notify != nil {
		e.notify(n)
	}
}

func (e *Engine) record(t telemetry.EventType, subject string, amount float64) {
	if e.tel != nil {
		e.tel.RecordEvent(e.clock.Now(), t, subject, amount)
	}
}

// Snapshot is a read-only view of the economy plus derived display fields.
type Snapshot struct {
	Variant        string  `json:"variant"`
	Currency       float64 `json:"currency"`
	TotalEarned    float64 `json:"total_earned"`
	ProductionRate float64 `json:"production_rate"`
	GlobalMult     float64 `json:"global_multiplier"`
	Level          int     `json:"level"`
	NextLevelAt    float64 `json:"next_level_at"` // 0 when the table is topped out
	TierName       string  `json:"tier_name"`
	TierRole       string  `json:"tier_role"`
	ComboCount     int     `json:"combo_count"`
	PrestigeCount  int     `json:"prestige_count"`
	PrestigeTokens int     `json:"prestige_tokens"`
	TotalClicks    int64   `json:"total_clicks"`
	CurrencyPeak   float64 `json:"currency_peak"`
	ProductionPeak float64 `json:"production_peak"`
	Completed      bool    `json:"completed"`
	EventPending   bool    `json:"event_pending"`

	Owned      map[string]int    `json:"owned"`
	PathChosen map[string]string `json:"path_chosen"`
	ShopOwned  map[string]bool   `json:"shop_owned"`
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	s := e.st
	tier := tierMeta(e.cfg, s.Level)

	snap := Snapshot{
		Variant:        e.cfg.Key,
		Currency:       s.Currency,
		TotalEarned:    s.TotalEarned,
		ProductionRate: s.ProductionRate,
		GlobalMult:     s.GlobalMult,
		Level:          s.Level,
		TierName:       tier.Name,
		TierRole:       tier.Role,
		ComboCount:     e.comboCount,
		PrestigeCount:  s.PrestigeCount,
		PrestigeTokens: s.PrestigeTokens,
		TotalClicks:    s.TotalClicks,
		CurrencyPeak:   s.CurrencyPeak,
		ProductionPeak: s.ProductionPeak,
		Completed:      s.Completed,
		EventPending:   e.active != nil,
		Owned:          map[string]int{},
		PathChosen:     map[string]string{},
		ShopOwned:      map[string]bool{},
	}
	if s.Level < e.cfg.MaxLevel() {
		snap.NextLevelAt = e.cfg.LevelThresholds[s.Level+1]
	}
	for k, v := range s.Owned {
		snap.Owned[k] = v
	}
	for k, v := range s.PathChosen {
		snap.PathChosen[k] = v
	}
	for k, v := range s.ShopOwned {
		snap.ShopOwned[k] = v
	}
	return snap
}
