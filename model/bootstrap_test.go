package model

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name       string
		footballer Footballer
		expected   string
	}{
		{
			name:       "web name shorter than full name",
			footballer: Footballer{FirstName: "Son", SecondName: "Heung-min", WebName: "Son"},
			expected:   "Son",
		},
		{
			name:       "web name as long as full name",
			footballer: Footballer{FirstName: "Cole", SecondName: "Palmer", WebName: "Cole Palmer"},
			expected:   "Cole Palmer",
		},
		{
			name:       "empty web name",
			footballer: Footballer{FirstName: "Erling", SecondName: "Haaland"},
			expected:   "Erling Haaland",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.footballer.DisplayName(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFootballerName_fallback(t *testing.T) {
	names := map[int]string{11: "M.Salah"}

	if got := FootballerName(names, 11); got != "M.Salah" {
		t.Errorf("expected M.Salah, got %q", got)
	}
	if got := FootballerName(names, 999); got != "Player 999" {
		t.Errorf("expected Player 999, got %q", got)
	}
}
