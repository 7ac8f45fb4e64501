package sanitizer

import "strings"

// SanitizeIDSet trims each identifier and drops empties and duplicates,
// preserving first-seen order. Room and seat selections arrive from pickers
// but may be replayed from legacy records with inconsistent shapes.
func SanitizeIDSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		s := strings.TrimSpace(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
