package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Alien", 10, "Alien"},
		{"The Matrix Reloaded", 10, "The Mat..."},
		{"Amélie", 5, "Am..."},
		{"七人の侍", 7, "七人..."},
		{"Heat", 0, ""},
	}

	for _, tt := range tests {
		got := Truncate(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if lipgloss.Width(got) > tt.width {
			t.Errorf("Truncate(%q, %d) is %d cells wide", tt.in, tt.width, lipgloss.Width(got))
		}
	}
}

func TestHighlightMatches(t *testing.T) {
	if got := HighlightMatches("Heat", nil); got != "Heat" {
		t.Errorf("expected text unchanged without matches, got %q", got)
	}

	// Every rune survives highlighting, multi-byte ones included
	got := HighlightMatches("İstanbul Express", []int{11, 12})
	for _, r := range "İstanbul Express" {
		if !strings.ContainsRune(got, r) {
			t.Errorf("expected %q in %q", r, got)
		}
	}
}
