package persistence

import (
	"strings"
)

// userSortColumns are the columns employee listings may sort on. Sort
// input reaches ORDER BY as SQL text, so anything outside this set is
// replaced with the fallback rather than interpolated.
var userSortColumns = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"email":         true,
	"position":      true,
	"status":        true,
	"last_login_at": true,
}

// sortClause builds a safe ORDER BY expression from untrusted sort
// parameters. Unknown fields fall back to fallbackField, and anything
// that is not exactly "asc" sorts descending.
func sortClause(field, order string, allowed map[string]bool, fallbackField string) string {
	col := strings.TrimSpace(field)
	if !allowed[col] {
		col = fallbackField
	}

	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(order), "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}
