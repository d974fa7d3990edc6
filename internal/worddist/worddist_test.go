package worddist

import "testing"

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()

	if params.SumThreshold != 100 {
		t.Errorf("SumThreshold = %d, want 100", params.SumThreshold)
	}
	if params.DistanceThreshold != 10 {
		t.Errorf("DistanceThreshold = %d, want 10", params.DistanceThreshold)
	}
	if params.AcceptanceThreshold != 20 {
		t.Errorf("AcceptanceThreshold = %d, want 20", params.AcceptanceThreshold)
	}
	if params.MaxWords != 3 {
		t.Errorf("MaxWords = %d, want 3", params.MaxWords)
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		name     string
		value    Translation
		expected bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"string", "fine", false},
		{"empty string slice", []string{}, true},
		{"string slice", []string{"fine"}, false},
		{"empty any slice", []any{}, true},
		{"any slice", []any{"fine"}, false},
		{"empty map", map[string]any{}, true},
		{"map", map[string]any{"en": "fine"}, false},
		{"int", 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Empty(tt.value); got != tt.expected {
				t.Errorf("Empty(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}
