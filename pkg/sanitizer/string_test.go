package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \t\n  ", ""},
		{"leading and trailing", "  Kim Minji  ", "Kim Minji"},
		{"internal runs collapse", "Kim\t\t Minji", "Kim Minji"},
		{"newlines collapse", "window\nseat\nplease", "window seat please"},
		{"hangul preserved", "  김서울  ", "김서울"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
