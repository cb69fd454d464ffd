// Package storage provides SQLite-based persistence for round results and
// the user's artwork gallery.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hangart/internal/art/catalog"
)

// ErrNotFound is returned when a named artwork does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result is the outcome of one finished round.
type Result struct {
	ID         int64
	GameID     string
	Word       string
	Won        bool
	Misses     int
	Lives      int
	Score      int
	ArtPoints  int // total glyphs of the round's artwork
	ArtVisible int // glyphs disclosed when the round ended
	CreatedAt  time.Time
}

// Stats aggregates all recorded rounds.
type Stats struct {
	Played     int
	Won        int
	BestScore  int
	LastPlayed time.Time
}

// Artwork is a named user artwork kept in the gallery.
type Artwork struct {
	Name      string
	Text      string
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			word TEXT NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			lives INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			art_points INTEGER NOT NULL DEFAULT 0,
			art_visible INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);

		CREATE TABLE IF NOT EXISTS artworks (
			name TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveResult records a finished round and returns its ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO results (game_id, word, won, misses, lives, score, art_points, art_visible)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Word, r.Won, r.Misses, r.Lives, r.Score, r.ArtPoints, r.ArtVisible,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults returns up to limit results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, word, won, misses, lives, score, art_points, art_visible, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Word, &r.Won, &r.Misses, &r.Lives,
			&r.Score, &r.ArtPoints, &r.ArtVisible, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats returns aggregated statistics over all rounds.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), MAX(created_at)
		 FROM results`,
	).Scan(&st.Played, &st.Won, &st.BestScore, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// SaveArt stores text under name, replacing an existing artwork.
// Names are trimmed of surrounding whitespace here and in Art and DeleteArt.
func (s *Store) SaveArt(name, text string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("storage: artwork name is empty")
	}
	if !catalog.HasImage(text) {
		return fmt.Errorf("storage: artwork %q has no image lines", name)
	}

	_, err := s.db.Exec(
		`INSERT INTO artworks (name, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, text,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save artwork %q: %w", name, err)
	}
	return nil
}

// Art returns the artwork with the given name, or ErrNotFound.
func (s *Store) Art(name string) (Artwork, error) {
	name = strings.TrimSpace(name)
	var a Artwork
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT name, body, updated_at FROM artworks WHERE name = ?`,
		name,
	).Scan(&a.Name, &a.Text, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Artwork{}, fmt.Errorf("storage: artwork %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Artwork{}, fmt.Errorf("storage: cannot load artwork %q: %w", name, err)
	}
	a.UpdatedAt = parseTime(updatedAt)

	return a, nil
}

// ListArt returns all gallery artworks sorted by name.
func (s *Store) ListArt() ([]Artwork, error) {
	rows, err := s.db.Query(`SELECT name, body, updated_at FROM artworks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list artworks: %w", err)
	}
	defer rows.Close()

	var arts []Artwork
	for rows.Next() {
		var a Artwork
		var updatedAt any
		if err := rows.Scan(&a.Name, &a.Text, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan artwork: %w", err)
		}
		a.UpdatedAt = parseTime(updatedAt)
		arts = append(arts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return arts, nil
}

// DeleteArt removes the named artwork, or returns ErrNotFound.
func (s *Store) DeleteArt(name string) error {
	name = strings.TrimSpace(name)
	res, err := s.db.Exec(`DELETE FROM artworks WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete artwork %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete artwork %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("storage: artwork %q: %w", name, ErrNotFound)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
