// Package iconio reads and writes icon PNGs in the Android res tree.
package iconio

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/Mavwarf/icongen/internal/alpha"
	"github.com/Mavwarf/icongen/internal/paths"
)

// Read opens and decodes a PNG into NRGBA. A missing file surfaces as an
// error satisfying os.IsNotExist, so callers can warn-and-skip.
func Read(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return alpha.ToNRGBA(img), nil
}

// Write encodes img as PNG and writes it atomically, creating the parent
// drawable directory if needed. The alpha channel is preserved as-is.
func Write(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// BackupOnce copies src to backupPath unless a backup already exists there.
// It reports whether a new backup was created. Running an in-place edit
// twice therefore keeps the copy of the pre-first-edit original.
func BackupOnce(src, backupPath string) (bool, error) {
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", src, err)
	}
	if err := paths.AtomicWrite(backupPath, data); err != nil {
		return false, fmt.Errorf("backup %s: %w", src, err)
	}
	return true, nil
}
