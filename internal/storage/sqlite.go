// Package storage provides SQLite-based persistence for finished Blocky games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// GameRecord is a finished game and the result of every player in it.
type GameRecord struct {
	ID        string // Assigned by SaveGame
	Seed      int64
	Size      int
	MaxDepth  int
	Turns     int // Moves made
	GoalKind  string
	Results   []PlayerResult
	CreatedAt time.Time
}

// PlayerResult is one player's final standing.
type PlayerResult struct {
	PlayerID   int
	PlayerKind string // "human", "random" or "smart"
	GoalColour string // "#rrggbb"
	Score      int
	Winner     bool
}

// ResultEntry is a player result joined with its game, for leaderboards.
type ResultEntry struct {
	GameID     string
	GoalKind   string
	PlayerResult
	CreatedAt time.Time
}

// KindStats aggregates results per player kind.
type KindStats struct {
	PlayerKind string
	Games      int
	Wins       int
	BestScore  int
	AvgScore   float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			size INTEGER NOT NULL,
			max_depth INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			goal_kind TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			player_id INTEGER NOT NULL,
			player_kind TEXT NOT NULL,
			goal_colour TEXT NOT NULL,
			score INTEGER NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game and its results in one transaction.
// Returns the generated game ID.
func (s *Store) SaveGame(rec GameRecord) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		`INSERT INTO games (id, seed, size, max_depth, turns, goal_kind) VALUES (?, ?, ?, ?, ?, ?)`,
		id, rec.Seed, rec.Size, rec.MaxDepth, rec.Turns, rec.GoalKind,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	for _, r := range rec.Results {
		if _, err := tx.Exec(
			`INSERT INTO results (game_id, player_id, player_kind, goal_colour, score, winner)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, r.PlayerID, r.PlayerKind, r.GoalColour, r.Score, r.Winner,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save result for player %d: %w", r.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return id, nil
}

// TopResults retrieves the best N player results, optionally restricted to
// one goal kind (empty string means all kinds).
// Results are ordered by score descending.
func (s *Store) TopResults(goalKind string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT g.id, g.goal_kind, r.player_id, r.player_kind, r.goal_colour, r.score, r.winner, g.created_at
		 FROM results r
		 JOIN games g ON g.id = r.game_id
		 WHERE ? = '' OR g.goal_kind = ?
		 ORDER BY r.score DESC, g.created_at DESC
		 LIMIT ?`,
		goalKind, goalKind, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.GameID, &e.GoalKind, &e.PlayerID, &e.PlayerKind,
			&e.GoalColour, &e.Score, &e.Winner, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Game retrieves one game with its results. Returns nil if it does not exist.
func (s *Store) Game(id string) (*GameRecord, error) {
	var rec GameRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, size, max_depth, turns, goal_kind, created_at FROM games WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.Seed, &rec.Size, &rec.MaxDepth, &rec.Turns, &rec.GoalKind, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)

	if rec.Results, err = s.results(rec.ID); err != nil {
		return nil, err
	}
	return &rec, nil
}

// RecentGames retrieves the most recent games with their results.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, size, max_depth, turns, goal_kind, created_at
		 FROM games
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}

	var games []GameRecord
	for rows.Next() {
		var rec GameRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Seed, &rec.Size, &rec.MaxDepth, &rec.Turns,
			&rec.GoalKind, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		games = append(games, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range games {
		if games[i].Results, err = s.results(games[i].ID); err != nil {
			return nil, err
		}
	}
	return games, nil
}

// results loads the player results of a game in player order.
func (s *Store) results(gameID string) ([]PlayerResult, error) {
	rows, err := s.db.Query(
		`SELECT player_id, player_kind, goal_colour, score, winner
		 FROM results WHERE game_id = ? ORDER BY player_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []PlayerResult
	for rows.Next() {
		var r PlayerResult
		if err := rows.Scan(&r.PlayerID, &r.PlayerKind, &r.GoalColour, &r.Score, &r.Winner); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// PlayerKindStats aggregates games played, wins and scores per player kind,
// ordered by kind.
func (s *Store) PlayerKindStats() ([]KindStats, error) {
	rows, err := s.db.Query(
		`SELECT player_kind, COUNT(*), COALESCE(SUM(winner), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM results
		 GROUP BY player_kind
		 ORDER BY player_kind`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	defer rows.Close()

	var stats []KindStats
	for rows.Next() {
		var k KindStats
		if err := rows.Scan(&k.PlayerKind, &k.Games, &k.Wins, &k.BestScore, &k.AvgScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearGames deletes every stored game and result.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM results; DELETE FROM games;"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values from SQLite.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
