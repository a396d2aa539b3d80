// iconlog inspects the manifest of generated notification icons: what the
// generation tools wrote, when, and at which densities.
//
// Usage:
//
//	iconlog [show [days|duration]]   list entries (e.g. "show 7" or "show 24h")
//	iconlog counts [days]            written variants per icon
//	iconlog clean <days>             drop entries older than N days
//	iconlog clear                    delete all manifest data
//	iconlog path                     print the manifest location
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/Mavwarf/icongen/internal/config"
	"github.com/Mavwarf/icongen/internal/manifest"
)

var configFlag = flag.String("config", "", "path to icongen-config.json")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := manifest.Open(cfg.Options.Manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches one iconlog command against the store, writing output to w.
func run(store manifest.Store, args []string, w io.Writer) error {
	cmd := "show"
	rest := args
	if len(args) > 0 {
		cmd = args[0]
		rest = args[1:]
	}

	switch cmd {
	case "show":
		return show(store, rest, w)
	case "counts":
		return counts(store, rest, w)
	case "clean":
		if len(rest) != 1 {
			return fmt.Errorf("clean requires a number of days")
		}
		days, err := strconv.Atoi(rest[0])
		if err != nil || days < 1 {
			return fmt.Errorf("clean requires a positive number of days")
		}
		removed, err := store.Clean(days)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Removed %d entries older than %d days.\n", removed, days)
		return nil
	case "clear":
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(w, "Manifest cleared.")
		return nil
	case "path":
		fmt.Fprintln(w, store.Path())
		return nil
	default:
		return fmt.Errorf("unknown command %q (expected show, counts, clean, clear or path)", cmd)
	}
}

// show lists entries, newest last. An optional argument limits the range:
// an integer is a number of days, anything else must parse as a duration
// (e.g. "24h", "30m").
func show(store manifest.Store, args []string, w io.Writer) error {
	var entries []manifest.Entry
	var err error
	switch {
	case len(args) == 0:
		entries, err = store.Entries(0)
	case len(args) == 1:
		if days, aerr := strconv.Atoi(args[0]); aerr == nil {
			if days < 1 {
				return fmt.Errorf("days must be positive")
			}
			entries, err = store.Entries(days)
		} else {
			d, derr := time.ParseDuration(args[0])
			if derr != nil {
				return fmt.Errorf("argument %q is neither days nor a duration", args[0])
			}
			entries, err = store.EntriesSince(time.Now().Add(-d))
		}
	default:
		return fmt.Errorf("show takes at most one argument")
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No manifest entries.")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-10s  %-7s", e.Time.Format(time.RFC3339), e.Tool, e.Outcome)
		if e.Icon != "" {
			line += fmt.Sprintf("  %s", e.Icon)
		}
		if e.Density != "" {
			line += fmt.Sprintf("  %s (%dpx)", e.Density, e.Edge)
		}
		if e.Detail != "" {
			line += fmt.Sprintf("  [%s]", e.Detail)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// counts prints written-variant counts per icon, sorted by icon name.
func counts(store manifest.Store, args []string, w io.Writer) error {
	days := 0
	if len(args) == 1 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 1 {
			return fmt.Errorf("counts takes a positive number of days")
		}
		days = d
	} else if len(args) > 1 {
		return fmt.Errorf("counts takes at most one argument")
	}

	byIcon, err := store.Counts(days)
	if err != nil {
		return err
	}
	if len(byIcon) == 0 {
		fmt.Fprintln(w, "No written variants recorded.")
		return nil
	}

	names := make([]string, 0, len(byIcon))
	for name := range byIcon {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%6d  %s\n", byIcon[name], name)
	}
	return nil
}
