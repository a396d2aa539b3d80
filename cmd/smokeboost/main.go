// smokeboost makes the smoke in the cigarette icon denser: the alpha of
// every semi-transparent pixel is multiplied by a user-chosen factor while
// the solid body is left alone. Each file is backed up once before its
// first in-place edit, so the original can always be restored.
// Usage: smokeboost [-config path] [-res dir] [-icon name] [-multiplier f]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mavwarf/icongen/internal/alpha"
	"github.com/Mavwarf/icongen/internal/config"
	"github.com/Mavwarf/icongen/internal/density"
	"github.com/Mavwarf/icongen/internal/iconio"
	"github.com/Mavwarf/icongen/internal/manifest"
	"github.com/Mavwarf/icongen/internal/prompt"
)

var (
	configFlag     = flag.String("config", "", "path to icongen-config.json")
	resFlag        = flag.String("res", "", "override the res directory")
	iconFlag       = flag.String("icon", "ic_notification_cigarette", "icon to process")
	multiplierFlag = flag.Float64("multiplier", 0, "opacity multiplier; 0 prompts interactively")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *resFlag != "" {
		cfg.Options.ResDir = *resFlag
	}

	multiplier := *multiplierFlag
	switch {
	case multiplier > 0:
		prompt.Warn(os.Stdout, multiplier)
	case prompt.IsInteractive(int(os.Stdin.Fd())):
		multiplier = prompt.Multiplier(os.Stdin, os.Stdout, cfg.Options.DefaultMultiplier)
	default:
		multiplier = cfg.Options.DefaultMultiplier
	}
	fmt.Printf("Using opacity multiplier: %g\n", multiplier)

	store, err := manifest.Open(cfg.Options.Manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest disabled: %v\n", err)
	} else {
		defer store.Close()
	}

	for _, d := range density.All {
		path := d.IconPath(cfg.Options.ResDir, *iconFlag)

		img, err := iconio.Read(path)
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: %s not found\n", path)
			manifest.Record(store, manifest.Entry{
				Tool: "smokeboost", Icon: *iconFlag, Density: d.Name, Edge: d.Edge,
				Outcome: "skipped", Detail: "file not found",
			})
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}

		backupPath := d.BackupPath(cfg.Options.BackupDir, *iconFlag)
		created, err := iconio.BackupOnce(path, backupPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		if created {
			fmt.Printf("Created backup: %s\n", backupPath)
			manifest.Record(store, manifest.Entry{
				Tool: "smokeboost", Icon: *iconFlag, Density: d.Name, Edge: d.Edge, Outcome: "backup",
			})
		}

		if err := iconio.Write(path, alpha.Boost(img, multiplier)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		manifest.Record(store, manifest.Entry{
			Tool: "smokeboost", Icon: *iconFlag, Density: d.Name, Edge: d.Edge,
			Outcome: "written", Detail: fmt.Sprintf("multiplier %g", multiplier),
		})
		fmt.Printf("Processed %s\n", path)
	}

	fmt.Printf("\nDone! Originals are backed up under %s%c.\n", cfg.Options.BackupDir, os.PathSeparator)
	fmt.Println("Rebuild the app to see the denser smoke effect.")
}
