package services

import (
	"sort"
	"strconv"
	"strings"
)

// SortOption is the closed set of orderings the catalog pages offer.
type SortOption string

const (
	SortRelevance  SortOption = "relevance"
	SortPopularity SortOption = "popularity"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortRatingDesc SortOption = "rating-desc"
)

// ParseSortOption maps a raw query value onto the closed enum;
// anything unknown falls back to relevance.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc, SortPopularity:
		return SortOption(s)
	default:
		return SortRelevance
	}
}

// Filters mirrors the filter bar state: price bounds arrive as raw
// strings and are ignored when they do not parse, minRating 0 means
// "any", and Tags only applies to experiences (AND semantics).
type Filters struct {
	MinPrice  string
	MaxPrice  string
	MinRating float64
	Tags      []string
}

// Search filters items by free-text query plus Filters and orders the
// survivors by the chosen comparator. It is pure: the input slice is
// never mutated and the result is always non-nil. Relevance and
// popularity keep the incoming order, which stands in for a real
// ranking.
func Search[T Item](items []T, query string, f Filters, opt SortOption) []T {
	q := strings.ToLower(strings.TrimSpace(query))

	minPrice, hasMin := parsePrice(f.MinPrice)
	maxPrice, hasMax := parsePrice(f.MaxPrice)

	out := make([]T, 0, len(items))
	for _, item := range items {
		core := item.Core()

		if q != "" && !matchesQuery(item, q) {
			continue
		}
		if hasMin && core.PriceZAR < minPrice {
			continue
		}
		if hasMax && core.PriceZAR > maxPrice {
			continue
		}
		if f.MinRating > 0 && core.Rating < f.MinRating {
			continue
		}
		if len(f.Tags) > 0 && !hasAllTags(item.ItemTags(), f.Tags) {
			continue
		}
		out = append(out, item)
	}

	switch opt {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Core().PriceZAR < out[j].Core().PriceZAR
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Core().PriceZAR > out[j].Core().PriceZAR
		})
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Core().Rating > out[j].Core().Rating
		})
	}

	return out
}

func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func matchesQuery(item Item, q string) bool {
	core := item.Core()
	if strings.Contains(strings.ToLower(core.Title), q) ||
		strings.Contains(strings.ToLower(core.Location), q) ||
		strings.Contains(strings.ToLower(core.Description.Short), q) ||
		strings.Contains(strings.ToLower(core.Description.Long), q) {
		return true
	}
	for _, tag := range item.ItemTags() {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func hasAllTags(itemTags, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, t := range itemTags {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
