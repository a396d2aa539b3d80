package manifest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/icongen/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path, creates the
// schema, and performs one-time migration from the flat log file if it
// exists in the same directory.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	ddl := `
CREATE TABLE IF NOT EXISTS variants (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT    NOT NULL,
    tool      TEXT    NOT NULL,
    icon      TEXT    NOT NULL DEFAULT '',
    density   TEXT    NOT NULL DEFAULT '',
    edge      INTEGER NOT NULL DEFAULT 0,
    outcome   TEXT    NOT NULL,
    detail    TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_variants_timestamp ON variants(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_variants_icon      ON variants(icon, density);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}

	// One-time migration from flat file.
	logPath := filepath.Join(filepath.Dir(path), paths.ManifestFileName)
	if _, err := os.Stat(logPath); err == nil {
		if err := s.migrateFromFile(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "manifest: migration: %v\n", err)
		}
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Record(e Entry) error {
	ts := e.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO variants (timestamp, tool, icon, density, edge, outcome, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), e.Tool, e.Icon, e.Density, e.Edge, e.Outcome, e.Detail)
	return err
}

func (s *SQLiteStore) Entries(days int) ([]Entry, error) {
	if days <= 0 {
		return s.query(`SELECT timestamp, tool, icon, density, edge, outcome, detail
			FROM variants ORDER BY id`)
	}
	return s.EntriesSince(DayCutoff(days))
}

func (s *SQLiteStore) EntriesSince(cutoff time.Time) ([]Entry, error) {
	return s.query(`SELECT timestamp, tool, icon, density, edge, outcome, detail
		FROM variants WHERE timestamp >= ? ORDER BY id`,
		cutoff.Format(time.RFC3339))
}

func (s *SQLiteStore) Counts(days int) (map[string]int, error) {
	args := []any{}
	q := `SELECT icon, COUNT(*) FROM variants WHERE outcome = 'written' AND icon != ''`
	if days > 0 {
		q += ` AND timestamp >= ?`
		args = append(args, DayCutoff(days).Format(time.RFC3339))
	}
	q += ` GROUP BY icon`

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var icon string
		var n int
		if err := rows.Scan(&icon, &n); err != nil {
			return nil, err
		}
		counts[icon] = n
	}
	return counts, rows.Err()
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	res, err := s.db.Exec(`DELETE FROM variants WHERE timestamp < ?`,
		DayCutoff(days).Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM variants`)
	return err
}

func (s *SQLiteStore) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&ts, &e.Tool, &e.Icon, &e.Density, &e.Edge, &e.Outcome, &e.Detail); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Time = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// migrateFromFile imports entries from the flat log, then renames it so the
// migration runs only once.
func (s *SQLiteStore) migrateFromFile(logPath string) error {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return err
	}

	entries := ParseEntries(string(data))
	if len(entries) > 0 {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		stmt, err := tx.Prepare(
			`INSERT INTO variants (timestamp, tool, icon, density, edge, outcome, detail)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			tx.Rollback()
			return err
		}
		for _, e := range entries {
			if _, err := stmt.Exec(e.Time.Format(time.RFC3339),
				e.Tool, e.Icon, e.Density, e.Edge, e.Outcome, e.Detail); err != nil {
				stmt.Close()
				tx.Rollback()
				return err
			}
		}
		stmt.Close()
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return os.Rename(logPath, logPath+".migrated")
}
