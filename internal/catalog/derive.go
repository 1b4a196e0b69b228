package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vitrineapp/vitrine/internal/fakestore"
)

// SortMode selects the ordering applied to a derived view.
type SortMode int

const (
	SortNone SortMode = iota
	SortPriceAsc
	SortPriceDesc
	SortTitleAsc
)

// String returns the display label for the sort mode.
func (m SortMode) String() string {
	switch m {
	case SortPriceAsc:
		return "price ↑"
	case SortPriceDesc:
		return "price ↓"
	case SortTitleAsc:
		return "title"
	default:
		return "none"
	}
}

// Token returns the stable identifier used when persisting the mode.
func (m SortMode) Token() string {
	switch m {
	case SortPriceAsc:
		return "price-ascending"
	case SortPriceDesc:
		return "price-descending"
	case SortTitleAsc:
		return "title-ascending"
	default:
		return "none"
	}
}

// ParseSortMode is the inverse of Token. Unknown tokens map to SortNone.
func ParseSortMode(token string) SortMode {
	switch token {
	case "price-ascending":
		return SortPriceAsc
	case "price-descending":
		return SortPriceDesc
	case "title-ascending":
		return SortTitleAsc
	default:
		return SortNone
	}
}

// Next returns the following sort mode in the cycle.
func (m SortMode) Next() SortMode {
	switch m {
	case SortNone:
		return SortPriceAsc
	case SortPriceAsc:
		return SortPriceDesc
	case SortPriceDesc:
		return SortTitleAsc
	default:
		return SortNone
	}
}

// AllCategories is the synthetic category matching every product.
const AllCategories = "all"

// FilterParams holds the current derived-view parameters. The zero value
// filters nothing except that Category must be AllCategories; DefaultParams
// returns a fully-defined default.
type FilterParams struct {
	SearchText string
	Category   string
	Sort       SortMode
}

// DefaultParams returns the parameters in effect before any user interaction.
func DefaultParams() FilterParams {
	return FilterParams{Category: AllCategories, Sort: SortNone}
}

// titleCollator performs locale-aware title comparison. Loose comparison
// ignores case and diacritic differences the way a storefront sort should.
var titleCollator = collate.New(language.Und, collate.Loose)

// Derive projects the full product list into the visible ordered view.
// It is pure: the input slice is never mutated and equal inputs produce
// equal output, including tie order (sorting is stable).
func Derive(products []fakestore.Product, params FilterParams) []fakestore.Product {
	needle := strings.ToLower(strings.TrimSpace(params.SearchText))

	view := make([]fakestore.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		// Categories are provider-controlled tokens; match them exactly.
		if params.Category != "" && params.Category != AllCategories && p.Category != params.Category {
			continue
		}
		view = append(view, p)
	}

	switch params.Sort {
	case SortPriceAsc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price < view[j].Price })
	case SortPriceDesc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price > view[j].Price })
	case SortTitleAsc:
		sort.SliceStable(view, func(i, j int) bool {
			return titleCollator.CompareString(view[i].Title, view[j].Title) < 0
		})
	}
	return view
}

// Categories returns the distinct category labels present in products,
// in first-appearance order, prefixed with the synthetic AllCategories entry.
func Categories(products []fakestore.Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
