package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
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
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestBadgeStyle(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles()

	got := styles.BadgeStyle("Non alcoholic").GetBackground()
	if got != lipgloss.Color(th.BadgeColors["Non alcoholic"]) {
		t.Fatalf("BadgeStyle(Non alcoholic) background = %v, want %v", got, th.BadgeColors["Non alcoholic"])
	}
	if got := styles.BadgeStyle("Punch").GetBackground(); got != lipgloss.Color(th.Muted) {
		t.Fatalf("BadgeStyle(unknown) background = %v, want muted %v", got, th.Muted)
	}
}
