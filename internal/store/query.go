// Package store carries the pieces shared by every table: the mutation
// notifier and the in-memory half of the filter → order → count → paginate
// pipeline. The ordered scan itself comes from SQL; these helpers handle the
// full-materialization branch that free-text search and the sales filters
// require.
package store

import "strings"

// MatchFold reports whether s contains term, case-insensitively.
func MatchFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// Filter keeps the rows matching keep, preserving order.
func Filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Page slices rows with offset/limit page semantics: an offset beyond the
// end yields an empty page, not an error; limit <= 0 means no limit.
func Page[T any](rows []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
