package repository

import (
	"fmt"
	"strings"
)

// Sortable columns per relation. Caller-supplied sort fields are resolved
// through these maps; anything unknown falls back to name. The sort field
// and direction are the only query parts not bound as parameters, so they
// must never carry raw user input.
var (
	userSortColumns = map[string]string{
		"name":       "name",
		"email":      "email",
		"address":    "address",
		"role":       "role",
		"created_at": "created_at",
	}

	storeSortColumns = map[string]string{
		"name":       "s.name",
		"email":      "s.email",
		"address":    "s.address",
		"created_at": "s.created_at",
	}
)

func orderByClause(allowed map[string]string, sortBy, order string) string {
	column, ok := allowed[strings.ToLower(sortBy)]
	if !ok {
		column = allowed["name"]
	}

	direction := "ASC"
	if strings.EqualFold(order, "desc") {
		direction = "DESC"
	}

	return fmt.Sprintf(" ORDER BY %s %s", column, direction)
}
