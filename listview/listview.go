// Package listview holds the local, never-persisted presentational
// state of list screens: filter predicates applied to fetched records
// and the set of expanded item details.
package listview

import (
	"strings"

	"github.com/worklane/worklane-go/models"
)

// Filter returns the items satisfying all predicates. A nil or empty
// predicate list passes everything through. Empty-source and
// empty-after-filtering both yield an empty slice; the UI shows the
// same empty state for both.
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range preds {
			if !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// TransactionFilter is the set of local filters on the transaction
// list. Zero-value fields are inactive.
type TransactionFilter struct {
	Status string
	Type   string
	Search string
}

// Apply returns the transactions satisfying all active filters. Search
// is a case-insensitive substring match against description and ID.
func (f TransactionFilter) Apply(list []models.Transaction) []models.Transaction {
	var preds []func(models.Transaction) bool

	if f.Status != "" {
		status := f.Status
		preds = append(preds, func(t models.Transaction) bool {
			return t.Status == status
		})
	}
	if f.Type != "" {
		typ := f.Type
		preds = append(preds, func(t models.Transaction) bool {
			return t.Type == typ
		})
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		preds = append(preds, func(t models.Transaction) bool {
			return strings.Contains(strings.ToLower(t.Description), needle) ||
				strings.Contains(strings.ToLower(t.ID), needle)
		})
	}

	return Filter(list, preds...)
}

// ExpandedSet tracks which item details are expanded, keyed by record
// ID.
type ExpandedSet struct {
	ids map[string]struct{}
}

// NewExpandedSet creates an empty set.
func NewExpandedSet() *ExpandedSet {
	return &ExpandedSet{ids: make(map[string]struct{})}
}

// Toggle flips membership of id and reports the new state.
func (s *ExpandedSet) Toggle(id string) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Expanded reports whether id is currently expanded.
func (s *ExpandedSet) Expanded(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Collapse clears the whole set.
func (s *ExpandedSet) Collapse() {
	clear(s.ids)
}
