// alphasnap binarizes the alpha channel of every written notification icon
// in place: pixels at or above 15% opacity become fully opaque, everything
// below becomes fully transparent. Anti-aliased edges turn hard, which is
// what Android's small-icon renderer wants.
// Usage: alphasnap [-config path] [-res dir]
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
)

var (
	configFlag = flag.String("config", "", "path to icongen-config.json")
	resFlag    = flag.String("res", "", "override the res directory")
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

	store, err := manifest.Open(cfg.Options.Manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest disabled: %v\n", err)
	} else {
		defer store.Close()
	}

	processed := 0
	for _, d := range density.All {
		for _, icon := range cfg.Icons {
			path := d.IconPath(cfg.Options.ResDir, icon.Name)

			img, err := iconio.Read(path)
			if os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: %s not found, skipping\n", path)
				manifest.Record(store, manifest.Entry{
					Tool: "alphasnap", Icon: icon.Name, Density: d.Name, Edge: d.Edge,
					Outcome: "skipped", Detail: "file not found",
				})
				continue
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}

			fmt.Printf("Processing %s...\n", path)
			if err := iconio.Write(path, alpha.Snap(img)); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}
			manifest.Record(store, manifest.Entry{
				Tool: "alphasnap", Icon: icon.Name, Density: d.Name, Edge: d.Edge, Outcome: "written",
			})
			processed++
		}
	}

	fmt.Printf("\nDone! Processed %d icon files.\n", processed)
}
