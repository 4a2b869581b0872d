package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// DefaultName is the profile used when callers do not name one.
const DefaultName = "default"

// ErrNotFound is returned when no profile is stored under a name.
var ErrNotFound = errors.New("profile: not found")

// Config holds profile store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig stores profiles under ~/.cosmic.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".cosmic")}
}

// Record is a stored profile with its bookkeeping columns.
type Record struct {
	Name      string  `json:"name"`
	Profile   Profile `json:"profile"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// Store persists profiles in SQLite.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the profile database under cfg.DataDir
// and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("profile: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "profiles.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("profile: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("profile: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("profile: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS profiles (
			name              TEXT PRIMARY KEY,
			birth_date        TEXT NOT NULL DEFAULT '',
			birth_time        TEXT NOT NULL DEFAULT '',
			birth_place       TEXT NOT NULL DEFAULT '',
			latitude          REAL NOT NULL DEFAULT 0,
			longitude         REAL NOT NULL DEFAULT 0,
			last_period_start TEXT NOT NULL DEFAULT '',
			cycle_length      INTEGER NOT NULL DEFAULT 28,
			created_at        TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at        TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`)
	return err
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return strings.ToLower(name)
}

// Save validates p and upserts it under name.
func (s *Store) Save(ctx context.Context, name string, p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (name, birth_date, birth_time, birth_place, latitude, longitude, last_period_start, cycle_length)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			birth_date        = excluded.birth_date,
			birth_time        = excluded.birth_time,
			birth_place       = excluded.birth_place,
			latitude          = excluded.latitude,
			longitude         = excluded.longitude,
			last_period_start = excluded.last_period_start,
			cycle_length      = excluded.cycle_length,
			updated_at        = datetime('now')`,
		normalizeName(name), p.BirthDate, p.BirthTime, p.BirthPlace,
		p.Latitude, p.Longitude, p.LastPeriodStart, p.CycleLength,
	)
	if err != nil {
		return fmt.Errorf("profile: save %q: %w", name, err)
	}
	return nil
}

const selectColumns = `name, birth_date, birth_time, birth_place, latitude, longitude,
	last_period_start, cycle_length, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var r Record
	err := row.Scan(
		&r.Name, &r.Profile.BirthDate, &r.Profile.BirthTime, &r.Profile.BirthPlace,
		&r.Profile.Latitude, &r.Profile.Longitude, &r.Profile.LastPeriodStart,
		&r.Profile.CycleLength, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Load returns the record stored under name, or ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM profiles WHERE name = ?", normalizeName(name))

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, normalizeName(name))
	}
	if err != nil {
		return nil, fmt.Errorf("profile: load %q: %w", name, err)
	}
	return &r, nil
}

// List returns every stored record ordered by name.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+selectColumns+" FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("profile: list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("profile: scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Delete removes the profile stored under name, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM profiles WHERE name = ?", normalizeName(name))
	if err != nil {
		return fmt.Errorf("profile: delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile: delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, normalizeName(name))
	}
	return nil
}
