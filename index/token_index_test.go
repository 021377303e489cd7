package index

import "testing"

func TestTokenSetOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TokenSet
		b    TokenSet
		want bool
	}{
		{"shared token", TokenSet{"develop": {}, "backend": {}}, TokenSet{"develop": {}}, true},
		{"disjoint sets", TokenSet{"design": {}}, TokenSet{"develop": {}}, false},
		{"empty first set", TokenSet{}, TokenSet{"develop": {}}, false},
		{"empty second set", TokenSet{"develop": {}}, TokenSet{}, false},
		{"both empty", TokenSet{}, TokenSet{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestTokenIndexLifecycle(t *testing.T) {
	ti := NewTokenIndex()

	if ti.Len() != 0 {
		t.Fatalf("Expected empty index, got %d entries", ti.Len())
	}

	ti.Put("app1", TokenSet{"develop": {}})
	ti.Put("app2", TokenSet{"design": {}})

	if ti.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", ti.Len())
	}
	if set := ti.Get("app1"); !set.Overlaps(TokenSet{"develop": {}}) {
		t.Errorf("Unexpected token set for app1: %v", set)
	}
	if set := ti.Get("missing"); set != nil {
		t.Errorf("Expected nil set for unknown application, got %v", set)
	}

	ti.Delete("app1")
	if ti.Get("app1") != nil {
		t.Error("Expected app1 to be removed")
	}

	ti.Clear()
	if ti.Len() != 0 {
		t.Errorf("Expected empty index after Clear, got %d entries", ti.Len())
	}
}
