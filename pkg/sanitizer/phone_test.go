package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already formatted", "010-1234-5678", "010-1234-5678"},
		{"bare digits", "01012345678", "010-1234-5678"},
		{"spaced digits", "010 1234 5678", "010-1234-5678"},
		{"international prefix", "+82 10 1234 5678", "010-1234-5678"},
		{"surrounding whitespace", "  010-1234-5678  ", "010-1234-5678"},
		{"empty", "", ""},
		{"garbage passes through trimmed", " not a phone ", "not a phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
