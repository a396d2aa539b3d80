// fetchicons downloads each icon's emoji from the emoji CDN, reduces it to a
// flat-fill silhouette shaped by its alpha channel, and writes it at every
// Android density. A failed download skips that icon and the run continues.
// Usage: fetchicons [-config path] [-out dir] [-fill white|black] [-style name]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/Mavwarf/icongen/internal/alpha"
	"github.com/Mavwarf/icongen/internal/config"
	"github.com/Mavwarf/icongen/internal/density"
	"github.com/Mavwarf/icongen/internal/emoji"
	"github.com/Mavwarf/icongen/internal/iconio"
	"github.com/Mavwarf/icongen/internal/manifest"
	"github.com/Mavwarf/icongen/internal/resample"
)

var (
	configFlag = flag.String("config", "", "path to icongen-config.json")
	outFlag    = flag.String("out", "", "override the res output directory")
	fillFlag   = flag.String("fill", "white", "silhouette fill color: white (Android) or black")
	styleFlag  = flag.String("style", "", "emoji CDN style parameter (overrides config)")
)

func main() {
	flag.Parse()

	var fill color.NRGBA
	switch *fillFlag {
	case "white":
		fill = color.NRGBA{255, 255, 255, 255}
	case "black":
		fill = color.NRGBA{0, 0, 0, 255}
	default:
		fmt.Fprintf(os.Stderr, "Error: -fill must be white or black\n")
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *outFlag != "" {
		cfg.Options.ResDir = *outFlag
	}
	style := cfg.Options.CDNStyle
	if *styleFlag != "" {
		style = *styleFlag
	}

	store, err := manifest.Open(cfg.Options.Manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest disabled: %v\n", err)
	} else {
		defer store.Close()
	}

	client := emoji.Client{BaseURL: cfg.Options.CDNBaseURL, Style: style}

	for _, icon := range cfg.Icons {
		if icon.Emoji == "" {
			fmt.Fprintf(os.Stderr, "Warning: %s has no emoji configured, skipping\n", icon.Name)
			continue
		}

		fmt.Printf("Downloading %s (%s)...\n", icon.Name, icon.Emoji)
		src, err := client.Fetch(icon.Emoji)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: %v\n", err)
			manifest.Record(store, manifest.Entry{
				Tool: "fetchicons", Icon: icon.Name, Outcome: "skipped", Detail: err.Error(),
			})
			continue
		}

		sil := alpha.Silhouette(src, fill)
		for _, d := range density.All {
			variant := resample.Square(sil, d.Edge)
			path := d.IconPath(cfg.Options.ResDir, icon.Name)
			if err := iconio.Write(path, variant); err != nil {
				fmt.Fprintf(os.Stderr, "  Warning: %v\n", err)
				continue
			}
			manifest.Record(store, manifest.Entry{
				Tool: "fetchicons", Icon: icon.Name, Density: d.Name, Edge: d.Edge, Outcome: "written",
			})
			fmt.Printf("  Created %s (%dx%d)\n", path, d.Edge, d.Edge)
		}
	}
}
