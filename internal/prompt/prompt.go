// Package prompt reads the smoke opacity multiplier interactively.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether fd is attached to a terminal. The boost
// tool only prompts when it is; in scripts the configured default (or the
// -multiplier flag) is used instead.
func IsInteractive(fd int) bool {
	return term.IsTerminal(fd)
}

// Multiplier prompts on w and reads one line from r. Invalid or empty input
// falls back to def. Values below 1.0 or above 3.0 are accepted with an
// advisory warning.
func Multiplier(r io.Reader, w io.Writer, def float64) float64 {
	fmt.Fprintf(w, "Enter smoke opacity multiplier (1.0 = no change, 1.5-2.0 recommended): ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(w, "Invalid input. Using default multiplier of %g\n", def)
		return def
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		fmt.Fprintf(w, "Invalid input. Using default multiplier of %g\n", def)
		return def
	}

	Warn(w, value)
	return value
}

// Warn prints the advisory messages for out-of-range multipliers. It never
// rejects the value.
func Warn(w io.Writer, value float64) {
	if value < 1.0 {
		fmt.Fprintln(w, "Warning: Multiplier < 1.0 will make smoke more transparent!")
	} else if value > 3.0 {
		fmt.Fprintln(w, "Warning: Multiplier > 3.0 may make smoke too dense!")
	}
}
