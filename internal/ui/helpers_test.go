package ui

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

func TestPadCell(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads_short", "ab", 5, "ab   "},
		{"exact", "abcde", 5, "abcde"},
		{"truncates_long", "abcdefgh", 5, "abcd…"},
		{"zero_width", "abc", 0, ""},
		{"empty", "", 3, "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := padCell(tc.in, tc.width)
			if got != tc.want {
				t.Fatalf("padCell(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}

func TestPadCell_WideRunesKeepExactWidth(t *testing.T) {
	// A double-width rune straddling the cut must not shorten the cell.
	got := padCell("日本語", 4)
	if w := runewidth.StringWidth(got); w != 4 {
		t.Fatalf("padCell wide = %q (width %d), want width 4", got, w)
	}
}

func TestPadLeftCell(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads_left", "12", 5, "   12"},
		{"exact", "12345", 5, "12345"},
		{"truncates_long", "1234567", 5, "1234…"},
		{"zero_width", "abc", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := padLeftCell(tc.in, tc.width)
			if got != tc.want {
				t.Fatalf("padLeftCell(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  hello  ", 10); got != "hello" {
		t.Fatalf("truncate trims = %q, want hello", got)
	}
	if got := truncate("hello world", 8); got != "hello w…" {
		t.Fatalf("truncate = %q, want %q", got, "hello w…")
	}
	if got := truncate("short", 0); got != "short" {
		t.Fatalf("truncate limit 0 = %q, want short", got)
	}
}

func TestHumanizeAge(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"negative", -5 * time.Second, "now"},
		{"subsecond", 500 * time.Millisecond, "now"},
		{"seconds", 12 * time.Second, "12s"},
		{"minutes", 61 * time.Second, "1m"},
		{"hours", 2 * time.Hour, "2h"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := humanizeAge(tc.in)
			if got != tc.want {
				t.Fatalf("humanizeAge(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFilterStrings_TrimsEmpty(t *testing.T) {
	values := []string{" a ", " ", "", "\t", "b"}
	out := filterStrings(values)
	if len(out) != 2 || out[0] != " a " || out[1] != "b" {
		t.Fatalf("filterStrings = %#v, want [%q %q]", out, " a ", "b")
	}
}

func TestTernary(t *testing.T) {
	if got := ternary(true, "a", "b"); got != "a" {
		t.Fatalf("ternary(true) = %q, want a", got)
	}
	if got := ternary(false, "a", "b"); got != "b" {
		t.Fatalf("ternary(false) = %q, want b", got)
	}
}
