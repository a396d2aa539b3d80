package prompt

import (
	"strings"
	"testing"
)

func TestMultiplierParsesValue(t *testing.T) {
	var out strings.Builder
	got := Multiplier(strings.NewReader("2.0\n"), &out, 1.5)
	if got != 2.0 {
		t.Errorf("Multiplier = %v, want 2.0", got)
	}
	if strings.Contains(out.String(), "Warning") {
		t.Errorf("unexpected warning for in-range value: %q", out.String())
	}
}

func TestMultiplierTrimsWhitespace(t *testing.T) {
	var out strings.Builder
	got := Multiplier(strings.NewReader("  1.8  \n"), &out, 1.5)
	if got != 1.8 {
		t.Errorf("Multiplier = %v, want 1.8", got)
	}
}

func TestMultiplierInvalidFallsBack(t *testing.T) {
	var out strings.Builder
	got := Multiplier(strings.NewReader("dense please\n"), &out, 1.5)
	if got != 1.5 {
		t.Errorf("Multiplier = %v, want default 1.5", got)
	}
	if !strings.Contains(out.String(), "default multiplier of 1.5") {
		t.Errorf("missing fallback notice: %q", out.String())
	}
}

func TestMultiplierEmptyInputFallsBack(t *testing.T) {
	var out strings.Builder
	got := Multiplier(strings.NewReader(""), &out, 1.5)
	if got != 1.5 {
		t.Errorf("Multiplier = %v, want default 1.5", got)
	}
}

func TestMultiplierLowWarning(t *testing.T) {
	var out strings.Builder
	got := Multiplier(strings.NewReader("0.5\n"), &out, 1.5)
	if got != 0.5 {
		t.Errorf("Multiplier = %v, want 0.5 (advisory only)", got)
	}
	if !strings.Contains(out.String(), "more transparent") {
		t.Errorf("missing low-value warning: %q", out.String())
	}
}

func TestMultiplierHighWarning(t *testing.T) {
	var out strings.Builder
	got := Multiplier(strings.NewReader("4\n"), &out, 1.5)
	if got != 4.0 {
		t.Errorf("Multiplier = %v, want 4.0 (advisory only)", got)
	}
	if !strings.Contains(out.String(), "too dense") {
		t.Errorf("missing high-value warning: %q", out.String())
	}
}
