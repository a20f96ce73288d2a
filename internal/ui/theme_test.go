package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Kanagawa"); got != "Slate" {
		t.Fatalf("NextTheme(Kanagawa) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got, name)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestModeColor(t *testing.T) {
	th := GetTheme("Nightfox")
	if got := th.ModeColor("pick"); got != th.ModeColors["pick"] {
		t.Fatalf("ModeColor(pick) = %q, want %q", got, th.ModeColors["pick"])
	}
	if got := th.ModeColor("unknown"); got != th.Muted {
		t.Fatalf("ModeColor(unknown) = %q, want %q", got, th.Muted)
	}
}

func TestEveryThemeCoversEveryMode(t *testing.T) {
	modes := []string{"pick", "multi", "compare", "drop"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, mode := range modes {
			if th.ModeColors[mode] == "" {
				t.Fatalf("theme %s missing mode color for %s", name, mode)
			}
		}
	}
}

func TestHexToColor_EmptyDefaults(t *testing.T) {
	if got := hexToColor(" "); got != tcell.ColorDefault {
		t.Fatalf("hexToColor empty = %v, want %v", got, tcell.ColorDefault)
	}
}
