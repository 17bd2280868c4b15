package ui

import (
	"testing"

	"github.com/fatih/color"
)

func TestShouldUseColor(t *testing.T) {
	tests := []struct {
		name     string
		noColor  string
		force    string
		clicolor string
		want     bool
	}{
		{"no_color wins", "1", "1", "", false},
		{"force", "", "1", "", true},
		{"clicolor off", "", "", "0", false},
	}

	for _, tt := range tests {
		t.Setenv("NO_COLOR", tt.noColor)
		t.Setenv("CLICOLOR_FORCE", tt.force)
		t.Setenv("CLICOLOR", tt.clicolor)
		if got := ShouldUseColor(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSetColor(t *testing.T) {
	orig := color.NoColor
	defer func() { color.NoColor = orig }()

	SetColor(false)
	if got := Brand.Sprint("x"); got != "x" {
		t.Errorf("expected plain text with color off, got %q", got)
	}
}
