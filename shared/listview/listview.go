// Package listview implements the list-page contract shared by every admin
// screen: the full collection is held in memory, filtering is a pure
// conjunction of optional criteria recomputed on every change, and pagination
// is a clamped slice over the filtered result.
package listview

import "strings"

// Matcher reports whether a record satisfies one filter criterion.
type Matcher[T any] func(T) bool

// Criteria is a logical AND of independently optional criteria. The zero
// value matches everything.
type Criteria[T any] struct {
	matchers []Matcher[T]
}

// Add appends a criterion. Nil matchers are ignored so callers can build
// criteria from optional request parameters without branching.
func (c *Criteria[T]) Add(matcher Matcher[T]) {
	if matcher != nil {
		c.matchers = append(c.matchers, matcher)
	}
}

func (c Criteria[T]) Match(item T) bool {
	for _, matcher := range c.matchers {
		if !matcher(item) {
			return false
		}
	}

	return true
}

// Apply filters items by the criteria. It is pure and idempotent: applying
// the same criteria to its own output yields the same result.
func Apply[T any](items []T, criteria Criteria[T]) []T {
	res := make([]T, 0, len(items))

	for _, item := range items {
		if criteria.Match(item) {
			res = append(res, item)
		}
	}

	return res
}

// TextMatch reports whether the search term is a case-insensitive substring
// of any of the fields. An empty term matches everything.
func TextMatch(term string, fields ...string) bool {
	if term == "" {
		return true
	}

	term = strings.ToLower(term)

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

// TotalPages returns the page count for a collection. An empty collection
// still has one (empty) page.
func TotalPages(count, size int) int {
	if count == 0 || size <= 0 {
		return 1
	}

	pages := count / size
	if count%size != 0 {
		pages++
	}

	return pages
}

// Paginate slices one page out of items. The page number is clamped to
// [1, TotalPages]; concatenating every page in order reconstructs items.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}

	total := TotalPages(len(items), size)

	if page < 1 {
		page = 1
	}

	if page > total {
		page = total
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
