// Package manifest keeps a durable history of every icon variant the
// generation tools write, so a developer can see what touched the res tree
// and when. Two backends exist: a flat log file and a SQLite database.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/icongen/internal/paths"
)

// Entry is one recorded event: a written variant, a created backup, or a
// skipped item.
type Entry struct {
	Time    time.Time
	Tool    string // binary that produced the event, e.g. "fetchicons"
	Icon    string // icon name, e.g. "ic_notification_cigarette"
	Density string // density bucket, e.g. "xhdpi"
	Edge    int    // pixel edge length of the variant
	Outcome string // "written" | "backup" | "skipped"
	Detail  string // free text: skip reason, multiplier used, etc.
}

// Store abstracts manifest storage.
type Store interface {
	// Record appends one entry.
	Record(e Entry) error

	// Entries returns parsed entries from the last N days, 0 = all.
	Entries(days int) ([]Entry, error)
	// EntriesSince returns entries at or after cutoff.
	EntriesSince(cutoff time.Time) ([]Entry, error)
	// Counts returns, per icon name, how many variants were written in the
	// last N days (0 = all). Backups and skips are not counted.
	Counts(days int) (map[string]int, error)

	// Clean removes entries older than N days and reports how many.
	Clean(days int) (int, error)
	// Clear deletes all data.
	Clear() error

	Path() string
	Close() error
}

// Open returns the store for the configured backend: "sqlite" or "file"
// (the default). Both live under the icongen data directory.
func Open(backend string) (Store, error) {
	switch backend {
	case "sqlite":
		// Return a nil interface on failure, not a typed-nil *SQLiteStore:
		// callers treat a failed Open as "manifest disabled" and keep
		// calling Record, which must hit the nil guard below.
		s, err := NewSQLiteStore(filepath.Join(paths.DataDir(), paths.ManifestDBName))
		if err != nil {
			return nil, err
		}
		return s, nil
	case "", "file":
		return NewFileStore(filepath.Join(paths.DataDir(), paths.ManifestFileName)), nil
	default:
		return nil, fmt.Errorf("manifest: unknown backend %q", backend)
	}
}

// Record appends e to s best-effort: a nil store is ignored and a storage
// error is printed to stderr, never returned. Manifest trouble must not
// abort an icon run.
func Record(s Store, e Entry) {
	if s == nil {
		return
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	if err := s.Record(e); err != nil {
		fmt.Fprintf(os.Stderr, "manifest: %v\n", err)
	}
}

// DayCutoff returns local midnight N-1 days ago, so days=1 means "today".
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}
