// Package directory filters vendor and venue catalog listings. The filter is
// a pure predicate over already-fetched collections: no I/O, input order
// preserved.
package directory

import (
	"strconv"
	"strings"
)

// Item is the filterable view of a catalog entry. Fields that do not apply
// to an entity kind stay empty and their filter dimensions become no-ops.
type Item struct {
	Name        string
	Description string
	Location    string
	Category    string
	PriceRange  string
	Capacity    *int
}

// Criteria are the filter dimensions. Empty or "all" values are no-ops.
// Matching ORs the search text across name/description/location and ANDs
// across distinct dimensions.
type Criteria struct {
	Search        string
	Category      string
	PriceRange    string
	CapacityRange string // "min-max" or "min-" for an unbounded upper end
}

// Filter returns the ordered subsequence of items matching the criteria.
func Filter[T any](items []T, view func(T) Item, c Criteria) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Match(view(it), c) {
			out = append(out, it)
		}
	}
	return out
}

// Match reports whether one item satisfies every active filter dimension.
func Match(it Item, c Criteria) bool {
	if !matchSearch(it, c.Search) {
		return false
	}
	if active(c.Category) && !strings.EqualFold(it.Category, c.Category) {
		return false
	}
	if active(c.PriceRange) && it.PriceRange != c.PriceRange {
		return false
	}
	if active(c.CapacityRange) && !matchCapacity(it.Capacity, c.CapacityRange) {
		return false
	}
	return true
}

func active(v string) bool {
	return v != "" && v != "all"
}

func matchSearch(it Item, search string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(it.Name), s) ||
		strings.Contains(strings.ToLower(it.Description), s) ||
		strings.Contains(strings.ToLower(it.Location), s)
}

// matchCapacity matches "min-max" inclusive, or "min-"/"min" as a lower
// bound only. An item with no capacity value never matches a bounded filter.
func matchCapacity(capacity *int, rng string) bool {
	if capacity == nil {
		return false
	}
	min, max, hasMax, ok := parseCapacityRange(rng)
	if !ok {
		return false
	}
	if *capacity < min {
		return false
	}
	if hasMax && *capacity > max {
		return false
	}
	return true
}

func parseCapacityRange(rng string) (min, max int, hasMax, ok bool) {
	parts := strings.SplitN(rng, "-", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false, false
	}
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, false, false
		}
		return min, max, true, true
	}
	return min, 0, false, true
}
