package pandora

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// TestEllipsize tests the text truncation the service's character
// budgets require.
func TestEllipsize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"short string unchanged", "My Station", 64, "My Station"},
		{"exactly at limit unchanged", strings.Repeat("a", 64), 64, strings.Repeat("a", 64)},
		{"over limit truncated with ellipsis", strings.Repeat("a", 70), 64, strings.Repeat("a", 63) + "…"},
		{"one over limit", strings.Repeat("b", 65), 64, strings.Repeat("b", 63) + "…"},
		{"wide runes within limit unchanged", strings.Repeat("あ", 40), 64, strings.Repeat("あ", 40)},
		{"wide runes over limit keep the character budget", strings.Repeat("あ", 70), 64, strings.Repeat("あ", 63) + "…"},
		{"empty string", "", 64, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ellipsize(tt.input, tt.limit); got != tt.want {
				t.Errorf("ellipsize(%d chars, %d) = %q, want %q", utf8.RuneCountInString(tt.input), tt.limit, got, tt.want)
			}
		})
	}
}
