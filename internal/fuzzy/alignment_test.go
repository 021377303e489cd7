package fuzzy

import "testing"

func TestSubstringAlignment(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		text      string
		maxStart  int
		wantEdits int
	}{
		{"exact substring at start", "back", "backend developer", 100, 0},
		{"exact substring in middle", "end", "backend", 100, 0},
		{"one typo inside", "develper", "senior developer", 100, 1},
		{"pattern longer than text", "developer", "dev", 100, 6},
		{"no overlap at all", "zzz", "backend", 100, 3},
		{"whole-string alignment", "kitten", "sitting", 100, 2},
		{"unicode runes", "café", "cafe", 100, 1},
		{"match beyond window ignored", "engineer", "xxxxxxxxxxxxxxxxxxxx engineer", 5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edits, end := substringAlignment([]rune(tt.pattern), []rune(tt.text), tt.maxStart)
			if edits != tt.wantEdits {
				t.Errorf("substringAlignment(%q, %q, %d) edits = %d (end %d), want %d",
					tt.pattern, tt.text, tt.maxStart, edits, end, tt.wantEdits)
			}
		})
	}
}

func TestSubstringAlignmentEmptyInputs(t *testing.T) {
	if edits, end := substringAlignment([]rune(""), []rune("text"), 100); edits != -1 || end != -1 {
		t.Errorf("Expected (-1, -1) for empty pattern, got (%d, %d)", edits, end)
	}
	if edits, end := substringAlignment([]rune("abc"), []rune(""), 100); edits != -1 || end != -1 {
		t.Errorf("Expected (-1, -1) for empty text, got (%d, %d)", edits, end)
	}
}
