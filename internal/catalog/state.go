package catalog

import (
	"strings"

	"github.com/five82/artshelf/internal/gallery"
)

// Brand is an optional brand selection. The zero value selects every brand,
// which keeps "All" out of the brand namespace entirely.
type Brand struct {
	Name string
	Set  bool
}

// AllBrands is the implicit first choice of the brand bar.
func AllBrands() Brand {
	return Brand{}
}

// OnlyBrand selects a single brand by exact name.
func OnlyBrand(name string) Brand {
	return Brand{Name: name, Set: true}
}

// Matches reports whether a product brand passes the selection.
func (b Brand) Matches(brand string) bool {
	return !b.Set || b.Name == brand
}

// Filter is the combined brand and search predicate.
type Filter struct {
	Brand      Brand
	SearchText string
}

// IsZero reports whether the filter lets every product through.
func (f Filter) IsZero() bool {
	return !f.Brand.Set && strings.TrimSpace(f.SearchText) == ""
}

// Matches applies both predicates; a product must satisfy each of them.
func (f Filter) Matches(p gallery.Product) bool {
	return f.Brand.Matches(p.Brand) && matchesSearch(p.Name, f.SearchText)
}

// matchesSearch is a case-insensitive substring test. Blank text matches
// everything; otherwise the text is used as typed, surrounding spaces included.
func matchesSearch(name, text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(text))
}

// State is the catalog as the view sees it. Filtered and BrandOptions are
// derived and rebuilt by every Reduce call; do not edit them by hand.
type State struct {
	Products  []gallery.Product
	Filter    Filter
	Favorites FavoriteSet

	Filtered     []gallery.Product
	BrandOptions []string
}

// Counts summarises the state for status lines.
type Counts struct {
	Visible   int
	Total     int
	Favorites int
}

// Counts returns the visible, total and favorite counts.
func (s State) Counts() Counts {
	return Counts{
		Visible:   len(s.Filtered),
		Total:     len(s.Products),
		Favorites: s.Favorites.Len(),
	}
}

// IsFavorite reports whether id is in the favorite set.
func (s State) IsFavorite(id string) bool {
	return s.Favorites.Contains(id)
}

// Find returns the product with id from the current snapshot.
func (s State) Find(id string) (gallery.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return gallery.Product{}, false
}

func (s State) recompute() State {
	s.Filtered = filterProducts(s.Products, s.Filter)
	s.BrandOptions = brandOptions(s.Products)
	return s
}

// filterProducts keeps snapshot order and never aliases the snapshot slice.
func filterProducts(products []gallery.Product, f Filter) []gallery.Product {
	out := make([]gallery.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// brandOptions lists distinct brands in first-seen order. Blank brands cannot
// be selected meaningfully and are skipped.
func brandOptions(products []gallery.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if strings.TrimSpace(p.Brand) == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	return out
}
