package shared

import "strings"

// MatchesSearch reports whether term is a case-insensitive substring of any field.
// An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
