// drawicons generates the PNG notification icons procedurally: each glyph is
// drawn as vector shapes and rasterized at every Android density.
// Usage: drawicons [-config path] [-out dir]
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/Mavwarf/icongen/internal/config"
	"github.com/Mavwarf/icongen/internal/density"
	"github.com/Mavwarf/icongen/internal/glyph"
	"github.com/Mavwarf/icongen/internal/iconio"
	"github.com/Mavwarf/icongen/internal/manifest"
)

var (
	configFlag = flag.String("config", "", "path to icongen-config.json")
	outFlag    = flag.String("out", "", "override the res output directory")
)

// glyphs maps icon names to their drawing functions.
var glyphs = map[string]func(int) (*image.NRGBA, error){
	"ic_notification_cigarette": glyph.Cigarette,
	"ic_notification_leaf":      glyph.Leaf,
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *outFlag != "" {
		cfg.Options.ResDir = *outFlag
	}

	store, err := manifest.Open(cfg.Options.Manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest disabled: %v\n", err)
	} else {
		defer store.Close()
	}

	for _, icon := range cfg.Icons {
		draw, ok := glyphs[icon.Name]
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: no glyph for %s, skipping\n", icon.Name)
			manifest.Record(store, manifest.Entry{
				Tool: "drawicons", Icon: icon.Name, Outcome: "skipped", Detail: "no glyph",
			})
			continue
		}

		for _, d := range density.All {
			img, err := draw(d.Edge)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: drawing %s at %s: %v\n", icon.Name, d.Name, err)
				continue
			}
			path := d.IconPath(cfg.Options.ResDir, icon.Name)
			if err := iconio.Write(path, img); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}
			manifest.Record(store, manifest.Entry{
				Tool: "drawicons", Icon: icon.Name, Density: d.Name, Edge: d.Edge, Outcome: "written",
			})
			fmt.Printf("Created %s (%dx%d)\n", path, d.Edge, d.Edge)
		}
	}
}
