package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Mavwarf/icongen/internal/emoji"
	"github.com/Mavwarf/icongen/internal/paths"
)

// DefaultResDir is where the Android res tree lives relative to the repo
// root the tools are run from.
const DefaultResDir = "app/src/main/res"

// DefaultBackupDir holds pre-edit copies made by the smoke-boost tool.
const DefaultBackupDir = "backups"

// DefaultMultiplier is the smoke opacity multiplier used when the user
// gives no (or an invalid) value.
const DefaultMultiplier = 1.5

// Icon pairs an output file name with the emoji it is derived from.
type Icon struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

// Options holds global settings parsed from the "config" key.
type Options struct {
	ResDir            string  `json:"res_dir,omitempty"`
	BackupDir         string  `json:"backup_dir,omitempty"`
	CDNBaseURL        string  `json:"cdn_base_url,omitempty"`
	CDNStyle          string  `json:"cdn_style,omitempty"`
	DefaultMultiplier float64 `json:"default_multiplier,omitempty"`
	Manifest          string  `json:"manifest,omitempty"` // "file" | "sqlite"
}

// Config holds the top-level configuration: global options and the icon list.
type Config struct {
	Options Options `json:"config"`
	Icons   []Icon  `json:"icons"`
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	if err := json.Unmarshal(data, (*Alias)(c)); err != nil {
		return err
	}
	return nil
}

// Default returns the built-in configuration: the two notification icons of
// the app, written under app/src/main/res.
func Default() Config {
	return Config{
		Options: Options{
			ResDir:            DefaultResDir,
			BackupDir:         DefaultBackupDir,
			CDNBaseURL:        emoji.DefaultBaseURL,
			DefaultMultiplier: DefaultMultiplier,
			Manifest:          "file",
		},
		Icons: []Icon{
			{Name: "ic_notification_cigarette", Emoji: "🚬"},
			{Name: "ic_notification_leaf", Emoji: "🌿"},
		},
	}
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. icongen-config.json next to the running binary
//  3. ~/.config/icongen/icongen-config.json
//
// If no file exists, the built-in defaults are returned — the tools work
// out of the box.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
