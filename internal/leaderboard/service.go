package leaderboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultLimit = 100
	maxLimit     = 500

	// rankScanDepth bounds how deep RankOf searches; players below it
	// simply are not ranked yet.
	rankScanDepth = 1000
)

// Service fronts the ranking store with query caching and update fan-out.
// Query results are cached until the next score submission.
type Service struct {
	repo  Repository
	clock func() time.Time

	mu    sync.RWMutex
	cache map[string][]Entry

	onUpdate func(Entry)
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		clock: time.Now,
		cache: map[string][]Entry{},
	}
}

// SetUpdateHook registers a callback invoked after every accepted score,
// used to feed the websocket broadcast.
func (s *Service) SetUpdateHook(fn func(Entry)) { s.onUpdate = fn }

// SubmitScore validates and stores a score report. An empty player id gets
// one minted, returned in the stored entry.
func (s *Service) SubmitScore(ctx context.Context, e Entry) (Entry, error) {
	if e.CurrencyPeak < 0 || e.ProductionPeak < 0 || e.PrestigeCount < 0 || e.TotalClicks < 0 {
		return Entry{}, ErrMissingStats
	}
	if e.PlayerID == "" {
		e.PlayerID = uuid.NewString()
	}
	if e.Level < 1 {
		e.Level = 1
	}
	e.UpdatedAt = s.clock()
	e.Rank = 0

	if err := s.repo.Upsert(ctx, e); err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	s.cache = map[string][]Entry{}
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(e)
	}
	return e, nil
}

// Top returns the global board ordered by currency peak.
func (s *Service) Top(ctx context.Context, limit int, empire string) ([]Entry, error) {
	return s.ByCategory(ctx, ByCurrencyPeak, limit, empire)
}

// ByCategory returns a ranked board for one stat.
func (s *Service) ByCategory(ctx context.Context, category Category, limit int, empire string) ([]Entry, error) {
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	limit = clampLimit(limit)

	key := fmt.Sprintf("%s|%s|%d", category, empire, limit)
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	entries, err := s.repo.Top(ctx, category, empire, limit)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	s.mu.Lock()
	s.cache[key] = entries
	s.mu.Unlock()
	return entries, nil
}

// RankResult is a player's position plus the competitors around them.
type RankResult struct {
	Player       Entry   `json:"player"`
	Rank         int     `json:"rank"`
	TotalPlayers int     `json:"total_players"`
	Neighbors    []Entry `json:"neighbors"`
}

// RankOf locates a player on the currency board and returns up to radius
// neighbors on each side.
func (s *Service) RankOf(ctx context.Context, playerID string, radius int) (RankResult, error) {
	if radius <= 0 {
		radius = 5
	}

	board, err := s.repo.Top(ctx, ByCurrencyPeak, "", rankScanDepth)
	if err != nil {
		return RankResult{}, err
	}

	idx := -1
	for i, e := range board {
		if e.PlayerID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return RankResult{}, ErrPlayerNotFound
	}

	total, err := s.repo.Count(ctx, "")
	if err != nil {
		return RankResult{}, err
	}

	lo := idx - radius
	if lo < 0 {
		lo = 0
	}
	hi := idx + radius + 1
	if hi > len(board) {
		hi = len(board)
	}
	neighbors := make([]Entry, hi-lo)
	copy(neighbors, board[lo:hi])
	for i := range neighbors {
		neighbors[i].Rank = lo + i + 1
	}

	player := board[idx]
	player.Rank = idx + 1
	return RankResult{
		Player:       player,
		Rank:         idx + 1,
		TotalPlayers: total,
		Neighbors:    neighbors,
	}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
