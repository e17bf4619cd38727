// Package store holds the SQL for each table. Every function runs exactly one statement.
package store

import "strings"

// orderNewestFirst breaks created_at ties by id so rows inserted in the same instant keep insertion order.
const orderNewestFirst = " ORDER BY created_at DESC, id DESC"

// filterByCategory appends the optional categoria filter and ordering to a SELECT.
func filterByCategory(query, categoria string) (string, []any) {
	if categoria == "" {
		return query + orderNewestFirst, nil
	}
	return query + " WHERE categoria = $1" + orderNewestFirst, []any{categoria}
}

func joinCategories(cats []string) *string {
	if len(cats) == 0 {
		return nil
	}
	s := strings.Join(cats, ",")
	return &s
}

func splitCategories(s *string) []string {
	if s == nil || *s == "" {
		return nil
	}
	return strings.Split(*s, ",")
}
