package leaderboard

import (
	"errors"
	"time"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrUnknownCategory = errors.New("unknown leaderboard category")
	ErrMissingStats    = errors.New("missing player stats")
)

// Entry is one player's ranking record. Peaks only grow; the client reports
// them and the store keeps the maximum it has seen.
type Entry struct {
	PlayerID       string    `json:"player_id" db:"player_id"`
	Name           string    `json:"name" db:"name"`
	Empire         string    `json:"empire" db:"empire"`
	CurrencyPeak   float64   `json:"currency_peak" db:"currency_peak"`
	ProductionPeak float64   `json:"production_peak" db:"production_peak"`
	PrestigeCount  int       `json:"prestige_count" db:"prestige_count"`
	TotalClicks    int64     `json:"total_clicks" db:"total_clicks"`
	Level          int       `json:"level" db:"level"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Rank is assigned by queries, never stored.
	Rank int `json:"rank" db:"-"`
}

// Category selects which stat a board is ranked by.
type Category string

const (
	ByCurrencyPeak   Category = "currency_peak"
	ByProductionPeak Category = "production_peak"
	ByPrestigeCount  Category = "prestige_count"
	ByTotalClicks    Category = "total_clicks"
)

// columns whitelists sortable columns; anything else is rejected before it
// can reach a query.
var columns = map[Category]string{
	ByCurrencyPeak:   "currency_peak",
	ByProductionPeak: "production_peak",
	ByPrestigeCount:  "prestige_count",
	ByTotalClicks:    "total_clicks",
}

func (c Category) Valid() bool {
	_, ok := columns[c]
	return ok
}

func (c Category) column() string { return columns[c] }

// value extracts the ranked stat from an entry, for in-memory sorting.
func (c Category) value(e Entry) float64 {
	switch c {
	case ByProductionPeak:
		return e.ProductionPeak
	case ByPrestigeCount:
		return float64(e.PrestigeCount)
	case ByTotalClicks:
		return float64(e.TotalClicks)
	default:
		return e.CurrencyPeak
	}
}
