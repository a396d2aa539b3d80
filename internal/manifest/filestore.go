package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mavwarf/icongen/internal/paths"
)

// FileStore implements Store using a flat log file, one line per entry.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that reads and writes the given log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Record(e Entry) error {
	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPerm); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
	if err != nil {
		return err
	}
	defer file.Close()

	ts := e.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	line := fmt.Sprintf("%s  tool=%s  icon=%s  density=%s  edge=%d  outcome=%s",
		ts.Format(time.RFC3339), e.Tool, e.Icon, e.Density, e.Edge, e.Outcome)
	if e.Detail != "" {
		line += fmt.Sprintf("  detail=%q", e.Detail)
	}
	_, err = fmt.Fprintln(file, line)
	return err
}

func (f *FileStore) Entries(days int) ([]Entry, error) {
	if days <= 0 {
		return f.read(time.Time{})
	}
	return f.read(DayCutoff(days))
}

func (f *FileStore) EntriesSince(cutoff time.Time) ([]Entry, error) {
	return f.read(cutoff)
}

func (f *FileStore) Counts(days int) (map[string]int, error) {
	entries, err := f.Entries(days)
	if err != nil {
		return nil, err
	}
	return countWritten(entries), nil
}

func (f *FileStore) Clean(days int) (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := DayCutoff(days)
	var kept []string
	removed := 0
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n\r "), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, ok := parseLine(line)
		if ok && e.Time.In(cutoff.Location()).Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, line)
	}

	if len(kept) == 0 {
		_ = os.Remove(f.path)
		return removed, nil
	}
	out := strings.Join(kept, "\n") + "\n"
	if err := os.WriteFile(f.path, []byte(out), paths.FilePerm); err != nil {
		return 0, err
	}
	return removed, nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Close() error { return nil }

// read parses the whole file, keeping entries at or after cutoff (zero
// cutoff keeps everything). A missing file yields no entries and no error.
func (f *FileStore) read(cutoff time.Time) ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	entries := ParseEntries(string(data))
	if cutoff.IsZero() {
		return entries, nil
	}
	var filtered []Entry
	for _, e := range entries {
		if !e.Time.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
