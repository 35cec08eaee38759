package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/artshelf/internal/gallery"
)

func sampleProducts() []gallery.Product {
	return []gallery.Product{
		{ID: "1", Name: "Vase", Brand: "A", Price: 30},
		{ID: "2", Name: "Bowl", Brand: "B", Price: 12},
		{ID: "3", Name: "Glass Vase", Brand: "B", Price: 45},
		{ID: "4", Name: "Plate", Brand: "A", Price: 8},
		{ID: "5", Name: "Mug", Brand: "", Price: 5},
	}
}

func ids(products []gallery.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestReduce_BrandFilter(t *testing.T) {
	s := New([]gallery.Product{
		{ID: "1", Name: "Vase", Brand: "A"},
		{ID: "2", Name: "Bowl", Brand: "B"},
	})

	s, ev := Reduce(s, SetBrand{Brand: OnlyBrand("B")})

	assert.Equal(t, []string{"2"}, ids(s.Filtered))
	assert.Equal(t, SignalNone, ev.Signal)
}

func TestReduce_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	s := New([]gallery.Product{
		{ID: "1", Name: "Vase", Brand: "A"},
		{ID: "2", Name: "Bowl", Brand: "B"},
	})

	s, _ = Reduce(s, SetSearch{Text: "vas"})
	assert.Equal(t, []string{"1"}, ids(s.Filtered))

	s, _ = Reduce(s, SetSearch{Text: "VAS"})
	assert.Equal(t, []string{"1"}, ids(s.Filtered))
}

func TestReduce_BlankSearchMatchesEverything(t *testing.T) {
	for _, text := range []string{"", "   ", "\t"} {
		s, _ := Reduce(New(sampleProducts()), SetSearch{Text: text})
		assert.Len(t, s.Filtered, len(sampleProducts()), "text %q", text)
	}
}

func TestReduce_SearchTextIsNotTrimmed(t *testing.T) {
	s, _ := Reduce(New(sampleProducts()), SetSearch{Text: " vase"})
	assert.Equal(t, []string{"3"}, ids(s.Filtered), "leading space only matches inside a name")
}

func TestReduce_FiltersComposeWithAnd(t *testing.T) {
	products := sampleProducts()
	filters := []Filter{
		{},
		{Brand: OnlyBrand("A")},
		{Brand: OnlyBrand("B"), SearchText: "vase"},
		{SearchText: "a"},
		{Brand: OnlyBrand("A"), SearchText: "bowl"},
		{Brand: OnlyBrand("missing")},
		{Brand: OnlyBrand("All")},
	}
	for _, f := range filters {
		s := New(products)
		s, _ = Reduce(s, SetBrand{Brand: f.Brand})
		s, _ = Reduce(s, SetSearch{Text: f.SearchText})

		require.LessOrEqual(t, len(s.Filtered), len(products))
		for _, p := range s.Filtered {
			_, ok := s.Find(p.ID)
			assert.True(t, ok, "filtered product %s must come from the snapshot", p.ID)
			assert.True(t, f.Brand.Matches(p.Brand), "brand predicate for %s under %+v", p.ID, f)
			assert.True(t, matchesSearch(p.Name, f.SearchText), "search predicate for %s under %+v", p.ID, f)
		}
		for _, p := range products {
			if f.Matches(p) {
				assert.Contains(t, ids(s.Filtered), p.ID, "matching product dropped under %+v", f)
			}
		}
	}
}

func TestReduce_BrandNamedAllIsARealBrand(t *testing.T) {
	s := New([]gallery.Product{
		{ID: "1", Name: "Print", Brand: "All"},
		{ID: "2", Name: "Poster", Brand: "B"},
	})

	s, _ = Reduce(s, SetBrand{Brand: OnlyBrand("All")})
	assert.Equal(t, []string{"1"}, ids(s.Filtered))

	s, _ = Reduce(s, SetBrand{Brand: AllBrands()})
	assert.Equal(t, []string{"1", "2"}, ids(s.Filtered))
}

func TestReduce_AllBrandsRestoresSearchOnlyResult(t *testing.T) {
	base := New(sampleProducts())
	searchOnly, _ := Reduce(base, SetSearch{Text: "a"})

	for _, brand := range []string{"A", "B", "missing"} {
		s, _ := Reduce(searchOnly, SetBrand{Brand: OnlyBrand(brand)})
		s, _ = Reduce(s, SetBrand{Brand: AllBrands()})
		assert.Equal(t, ids(searchOnly.Filtered), ids(s.Filtered), "after brand %q", brand)
	}
}

func TestReduce_FilterPreservesSnapshotOrder(t *testing.T) {
	s, _ := Reduce(New(sampleProducts()), SetSearch{Text: "a"})
	assert.Equal(t, []string{"1", "3", "4"}, ids(s.Filtered))
}

func TestReduce_BrandOptionsFirstSeenAndUnique(t *testing.T) {
	s := New([]gallery.Product{
		{ID: "1", Brand: "Zeta"},
		{ID: "2", Brand: "Alpha"},
		{ID: "3", Brand: "Zeta"},
		{ID: "4", Brand: ""},
		{ID: "5", Brand: "Mid"},
		{ID: "6", Brand: "Alpha"},
	})

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, s.BrandOptions)
}

func TestReduce_BlankBrandsAreNotOptions(t *testing.T) {
	s := New([]gallery.Product{
		{ID: "1", Name: "Vase", Brand: "A"},
		{ID: "2", Name: "Mug", Brand: ""},
		{ID: "3", Name: "Cup", Brand: "   "},
	})

	// Blank and whitespace-only brands never become a choice.
	assert.Equal(t, []string{"A"}, s.BrandOptions)

	// The products themselves stay visible under all brands.
	assert.Equal(t, []string{"1", "2", "3"}, ids(s.Filtered))

	s, _ = Reduce(s, SetBrand{Brand: OnlyBrand("A")})
	assert.Equal(t, []string{"1"}, ids(s.Filtered))
	s, _ = Reduce(s, SetBrand{Brand: AllBrands()})
	assert.Equal(t, []string{"1", "2", "3"}, ids(s.Filtered))
}

func TestRefocus_ClearsFilterKeepsData(t *testing.T) {
	s := New(sampleProducts())
	s, _ = Reduce(s, ToggleFavorite{Product: sampleProducts()[0]})
	s, _ = Reduce(s, SetBrand{Brand: OnlyBrand("B")})
	s, _ = Reduce(s, SetSearch{Text: "vase"})
	require.Len(t, s.Filtered, 1)

	got := Refocus(s)

	assert.True(t, got.Filter.IsZero())
	assert.Len(t, got.Products, len(sampleProducts()))
	assert.Len(t, got.Filtered, len(sampleProducts()))
	assert.True(t, got.IsFavorite("1"))
	// The input is a value and stays filtered.
	assert.Len(t, s.Filtered, 1)
}

func TestReduce_LoadKeepsFilterAndFavorites(t *testing.T) {
	s := New(sampleProducts())
	s, _ = Reduce(s, SetBrand{Brand: OnlyBrand("B")})
	s, _ = Reduce(s, ToggleFavorite{Product: sampleProducts()[0]})

	s, _ = Reduce(s, Load{Products: []gallery.Product{
		{ID: "9", Name: "Frame", Brand: "B"},
		{ID: "10", Name: "Easel", Brand: "C"},
	}})

	assert.Equal(t, OnlyBrand("B"), s.Filter.Brand)
	assert.True(t, s.IsFavorite("1"), "favorites survive a reload even when absent from the snapshot")
	assert.Equal(t, []string{"9"}, ids(s.Filtered))
	assert.Equal(t, []string{"B", "C"}, s.BrandOptions)
}

func TestReduce_LoadEmptyClearsDerivedViews(t *testing.T) {
	s := New(sampleProducts())
	require.NotEmpty(t, s.Filtered)

	s, _ = Reduce(s, Load{Products: []gallery.Product{}})

	assert.Empty(t, s.Products)
	assert.Empty(t, s.Filtered)
	assert.Empty(t, s.BrandOptions)
}

func TestReduce_LoadDoesNotAliasCallerSlice(t *testing.T) {
	products := sampleProducts()
	s := New(products)
	products[0].Name = "changed"

	assert.Equal(t, "Vase", s.Products[0].Name)
}

func TestReduce_ResetFilters(t *testing.T) {
	s := New(sampleProducts())
	s, _ = Reduce(s, SetBrand{Brand: OnlyBrand("A")})
	s, _ = Reduce(s, SetSearch{Text: "plate"})
	require.Len(t, s.Filtered, 1)

	s, _ = Reduce(s, ResetFilters{})

	assert.True(t, s.Filter.IsZero())
	assert.Len(t, s.Filtered, len(sampleProducts()))
}

func TestReduce_ToggleFavoriteSignals(t *testing.T) {
	p := gallery.Product{ID: "1", Name: "Vase"}
	s := New(nil)

	s, ev := Reduce(s, ToggleFavorite{Product: p})
	assert.Equal(t, SignalAdded, ev.Signal)
	assert.Equal(t, "1", ev.Product.ID)
	assert.Equal(t, []string{"1"}, s.Favorites.IDs())

	s, ev = Reduce(s, ToggleFavorite{Product: p})
	assert.Equal(t, SignalRemoved, ev.Signal)
	assert.Equal(t, "1", ev.Product.ID)
	assert.Zero(t, s.Favorites.Len())
}

func TestReduce_ToggleIsSelfInverse(t *testing.T) {
	products := sampleProducts()
	start := New(products)
	start, _ = Reduce(start, ToggleFavorite{Product: products[1]})

	for _, p := range products {
		s, _ := Reduce(start, ToggleFavorite{Product: p})
		s, _ = Reduce(s, ToggleFavorite{Product: p})
		assert.Equal(t, start.IsFavorite(p.ID), s.IsFavorite(p.ID), "membership of %s", p.ID)
		assert.Equal(t, start.Favorites.Len(), s.Favorites.Len())
	}
}

func TestReduce_RemoveFavorite(t *testing.T) {
	products := sampleProducts()
	s := New(products)
	s, _ = Reduce(s, ToggleFavorite{Product: products[0]})
	s, _ = Reduce(s, ToggleFavorite{Product: products[2]})

	s, ev := Reduce(s, RemoveFavorite{ID: "1"})
	assert.Equal(t, SignalRemoved, ev.Signal)
	assert.Equal(t, "Vase", ev.Product.Name)
	assert.Equal(t, []string{"3"}, s.Favorites.IDs())

	_, ev = Reduce(s, RemoveFavorite{ID: "1"})
	assert.Equal(t, SignalNone, ev.Signal, "removing an absent id is silent")
}

func TestReduce_ClearFavorites(t *testing.T) {
	products := sampleProducts()
	s := New(products)

	_, ev := Reduce(s, ClearFavorites{})
	assert.Equal(t, SignalNone, ev.Signal, "clearing an empty set is silent")

	s, _ = Reduce(s, ToggleFavorite{Product: products[0]})
	s, _ = Reduce(s, ToggleFavorite{Product: products[1]})
	s, ev = Reduce(s, ClearFavorites{})

	assert.Equal(t, SignalCleared, ev.Signal)
	assert.Zero(t, s.Favorites.Len())
	assert.False(t, s.IsFavorite("1"))
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	before := New(products)
	before, _ = Reduce(before, ToggleFavorite{Product: products[0]})

	after, _ := Reduce(before, ToggleFavorite{Product: products[1]})
	_, _ = Reduce(after, ClearFavorites{})

	assert.Equal(t, []string{"1"}, before.Favorites.IDs())
	assert.Equal(t, []string{"1", "2"}, after.Favorites.IDs())
}

func TestState_Counts(t *testing.T) {
	products := sampleProducts()
	s := New(products)
	s, _ = Reduce(s, SetBrand{Brand: OnlyBrand("A")})
	s, _ = Reduce(s, ToggleFavorite{Product: products[4]})

	assert.Equal(t, Counts{Visible: 2, Total: 5, Favorites: 1}, s.Counts())
}

func TestSignal_String(t *testing.T) {
	cases := map[Signal]string{
		SignalNone:    "none",
		SignalAdded:   "added",
		SignalRemoved: "removed",
		SignalCleared: "cleared",
	}
	for sig, want := range cases {
		assert.Equal(t, want, sig.String())
	}
}
