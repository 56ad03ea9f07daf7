package catalog

import "strings"

// FilterKind identifies which of the two independent filters is active.
type FilterKind string

const (
	FilterNone     FilterKind = ""
	FilterSearch   FilterKind = "search"
	FilterCategory FilterKind = "category"
)

// Filter is the current filter state. Search and category are applied
// independently: setting one replaces the other, they are never combined.
type Filter struct {
	Kind  FilterKind
	Value string
}

// SearchFilter builds a free-text filter.
func SearchFilter(term string) Filter {
	return Filter{Kind: FilterSearch, Value: term}
}

// CategoryFilter builds a category filter. Use CategoryAll to match everything.
func CategoryFilter(category string) Filter {
	return Filter{Kind: FilterCategory, Value: category}
}

// Apply runs the filter against the full product list.
func (f Filter) Apply(products []Product) []Product {
	switch f.Kind {
	case FilterSearch:
		return Search(products, f.Value)
	case FilterCategory:
		return ByCategory(products, f.Value)
	default:
		return Search(products, "")
	}
}

// Search keeps products whose name or category contains term, ignoring case.
// An empty term matches every product.
func Search(products []Product, term string) []Product {
	term = strings.ToLower(term)
	return Where(products, func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term)
	})
}

// ByCategory keeps products whose category equals category exactly.
// CategoryAll matches every product.
func ByCategory(products []Product, category string) []Product {
	if category == CategoryAll {
		return Where(products, func(Product) bool { return true })
	}
	return Where(products, func(p Product) bool {
		return p.Category == category
	})
}

// PricedBelow keeps products strictly cheaper than ceiling.
func PricedBelow(products []Product, ceiling float64) []Product {
	return Where(products, func(p Product) bool {
		return p.Price < ceiling
	})
}

// PurerThan keeps products with purity strictly above threshold.
func PurerThan(products []Product, threshold float64) []Product {
	return Where(products, func(p Product) bool {
		return p.Purity > threshold
	})
}

// Where returns a new slice with the products matching keep, in source order.
func Where(products []Product, keep func(Product) bool) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category tags in first-seen order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
