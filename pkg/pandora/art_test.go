package pandora

import (
	"encoding/json"
	"testing"
)

// TestArtBestURLForSize tests the nearest-size lookup rules.
func TestArtBestURLForSize(t *testing.T) {
	art := NewArt(map[int]string{
		90:   "a",
		500:  "b",
		1080: "c",
	})

	tests := []struct {
		name string
		size int
		want string
	}{
		{"exact match", 500, "b"},
		{"exact match at largest", 1080, "c"},
		{"rounds up to next size", 700, "c"},
		{"rounds up to smallest", 50, "a"},
		{"rounds up even when smaller is closer", 91, "b"},
		{"beyond all sizes returns largest", 4000, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := art.BestURLForSize(tt.size); got != tt.want {
				t.Errorf("BestURLForSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

// TestArtEmpty tests that lookups on an empty set return empty
// results, not errors.
func TestArtEmpty(t *testing.T) {
	var art Art

	if !art.Empty() {
		t.Error("expected zero-value Art to be empty")
	}
	if got := art.BestURLForSize(500); got != "" {
		t.Errorf("BestURLForSize on empty art = %q, want \"\"", got)
	}
	if got := art.URLForSize(500); got != "" {
		t.Errorf("URLForSize on empty art = %q, want \"\"", got)
	}
	if sizes := art.Sizes(); len(sizes) != 0 {
		t.Errorf("Sizes on empty art = %v, want none", sizes)
	}
}

// TestArtURLForSize tests the exact-size lookup.
func TestArtURLForSize(t *testing.T) {
	art := NewArt(map[int]string{90: "small", 640: "big"})

	if got := art.URLForSize(640); got != "big" {
		t.Errorf("URLForSize(640) = %q, want %q", got, "big")
	}
	if got := art.URLForSize(91); got != "" {
		t.Errorf("URLForSize(91) = %q, want \"\"", got)
	}
}

// TestArtSizesSorted tests that sizes come back ascending regardless
// of construction order.
func TestArtSizesSorted(t *testing.T) {
	art := NewArt(map[int]string{1080: "c", 90: "a", 500: "b"})

	want := []int{90, 500, 1080}
	got := art.Sizes()
	if len(got) != len(want) {
		t.Fatalf("Sizes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sizes() = %v, want %v", got, want)
		}
	}
}

// TestArtJSON tests decoding the wire form and re-encoding it sorted.
func TestArtJSON(t *testing.T) {
	raw := `[{"url":"c","size":1080},{"url":"a","size":90},{"url":"b","size":500}]`

	var art Art
	if err := json.Unmarshal([]byte(raw), &art); err != nil {
		t.Fatalf("failed to unmarshal art: %v", err)
	}

	if got := art.BestURLForSize(700); got != "c" {
		t.Errorf("BestURLForSize(700) = %q, want %q", got, "c")
	}

	encoded, err := json.Marshal(art)
	if err != nil {
		t.Fatalf("failed to marshal art: %v", err)
	}
	want := `[{"url":"a","size":90},{"url":"b","size":500},{"url":"c","size":1080}]`
	if string(encoded) != want {
		t.Errorf("marshaled art = %s, want %s", encoded, want)
	}
}
