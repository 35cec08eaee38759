package catalog

import "github.com/five82/artshelf/internal/gallery"

// FavoriteSet is an insertion-ordered set of products keyed by ID. It is a
// value type: With, Without and friends return a new set.
type FavoriteSet struct {
	items []gallery.Product
}

// NewFavoriteSet builds a set from products. A repeated ID keeps its first
// occurrence.
func NewFavoriteSet(products ...gallery.Product) FavoriteSet {
	var s FavoriteSet
	for _, p := range products {
		s = s.With(p)
	}
	return s
}

// Len returns the number of favorites.
func (s FavoriteSet) Len() int {
	return len(s.items)
}

// Contains reports membership by product ID.
func (s FavoriteSet) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Items returns the favorites in insertion order as an independent slice.
func (s FavoriteSet) Items() []gallery.Product {
	return gallery.CloneProducts(s.items)
}

// IDs returns the member IDs in insertion order.
func (s FavoriteSet) IDs() []string {
	ids := make([]string, len(s.items))
	for i, p := range s.items {
		ids[i] = p.ID
	}
	return ids
}

// With adds p unless its ID is already present.
func (s FavoriteSet) With(p gallery.Product) FavoriteSet {
	if s.Contains(p.ID) {
		return s
	}
	items := make([]gallery.Product, len(s.items), len(s.items)+1)
	copy(items, s.items)
	return FavoriteSet{items: append(items, p)}
}

// Without removes id and returns the removed product, if any.
func (s FavoriteSet) Without(id string) (FavoriteSet, gallery.Product, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return s, gallery.Product{}, false
	}
	items := make([]gallery.Product, 0, len(s.items)-1)
	items = append(items, s.items[:idx]...)
	items = append(items, s.items[idx+1:]...)
	return FavoriteSet{items: items}, s.items[idx], true
}

func (s FavoriteSet) indexOf(id string) int {
	for i, p := range s.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}
