package leaderboard

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteRepo is the persistent ranking store.
type SQLiteRepo struct {
	db *sqlx.DB
}

// OpenSQLite opens or creates the scores database at the given path.
func OpenSQLite(path string) (*SQLiteRepo, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open scores db: %w", err)
	}
	r := &SQLiteRepo{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate scores db: %w", err)
	}
	return r, nil
}

func (r *SQLiteRepo) Close() error { return r.db.Close() }

func (r *SQLiteRepo) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		player_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		empire TEXT NOT NULL DEFAULT '',
		currency_peak REAL NOT NULL DEFAULT 0,
		production_peak REAL NOT NULL DEFAULT 0,
		prestige_count INTEGER NOT NULL DEFAULT 0,
		total_clicks INTEGER NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 1,
		updated_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_scores_currency ON scores(currency_peak DESC);
	CREATE INDEX IF NOT EXISTS idx_scores_empire ON scores(empire);
	`
	_, err := r.db.Exec(schema)
	return err
}

func (r *SQLiteRepo) Upsert(ctx context.Context, e Entry) error {
	// MAX() on conflict keeps growing stats growing regardless of report order
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO scores
			(player_id, name, empire, currency_peak, production_peak,
			 prestige_count, total_clicks, level, updated_at)
		VALUES
			(:player_id, :name, :empire, :currency_peak, :production_peak,
			 :prestige_count, :total_clicks, :level, :updated_at)
		ON CONFLICT(player_id) DO UPDATE SET
			name            = CASE WHEN excluded.name != '' THEN excluded.name ELSE scores.name END,
			empire          = excluded.empire,
			currency_peak   = MAX(scores.currency_peak, excluded.currency_peak),
			production_peak = MAX(scores.production_peak, excluded.production_peak),
			prestige_count  = MAX(scores.prestige_count, excluded.prestige_count),
			total_clicks    = MAX(scores.total_clicks, excluded.total_clicks),
			level           = MAX(scores.level, excluded.level),
			updated_at      = excluded.updated_at`, e)
	return err
}

func (r *SQLiteRepo) Top(ctx context.Context, category Category, empire string, limit int) ([]Entry, error) {
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(`SELECT player_id, name, empire, currency_peak, production_peak,
		prestige_count, total_clicks, level, updated_at
		FROM scores WHERE (? = '' OR empire = ?)
		ORDER BY %s DESC, player_id ASC LIMIT ?`, category.column())

	out := []Entry{}
	if err := r.db.SelectContext(ctx, &out, query, empire, empire, limit); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLiteRepo) Count(ctx context.Context, empire string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM scores WHERE (? = '' OR empire = ?)`, empire, empire)
	return n, err
}
