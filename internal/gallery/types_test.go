package gallery

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestProductDecodesCatalogWireNames(t *testing.T) {
	raw := `{
		"id": "7",
		"artName": "Blue Vase",
		"price": 120,
		"description": "hand blown",
		"brand": "Murano",
		"glassSurface": true,
		"image": "https://img/7.png",
		"limitedTimeDeal": 0.25,
		"comments": [{"author": "ann", "content": "lovely", "rating": 5}]
	}`
	var p Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if p.ID != "7" || p.Name != "Blue Vase" || p.Brand != "Murano" || p.ImageRef != "https://img/7.png" {
		t.Fatalf("decoded product = %#v", p)
	}
	if !p.GlassSurface || p.DiscountFraction != 0.25 {
		t.Fatalf("decoded flags = glass %v deal %v, want true 0.25", p.GlassSurface, p.DiscountFraction)
	}
	if len(p.Comments) != 1 || p.Comments[0].Rating != 5 {
		t.Fatalf("decoded comments = %#v", p.Comments)
	}
}

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		fraction float64
		want     float64
	}{
		{"no deal", 100, 0, 100},
		{"quarter off", 100, 0.25, 75},
		{"free", 100, 1, 0},
		{"negative clamps", 100, -0.5, 100},
		{"above one clamps", 100, 1.5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Price: tc.price, DiscountFraction: tc.fraction}
			if got := p.DiscountedPrice(); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("DiscountedPrice() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAverageRating(t *testing.T) {
	if got := (Product{}).AverageRating(); got != 0 {
		t.Fatalf("AverageRating() without comments = %v, want 0", got)
	}
	p := Product{Comments: []Comment{{Rating: 5}, {Rating: 4}, {Rating: 3}}}
	if got := p.AverageRating(); got != 4 {
		t.Fatalf("AverageRating() = %v, want 4", got)
	}
}

func TestValidate(t *testing.T) {
	valid := Product{ID: "1", Name: "Vase", Price: 10, DiscountFraction: 0.1, Comments: []Comment{{Rating: 1}, {Rating: 5}}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid product: %v", err)
	}

	cases := map[string]Product{
		"empty id":    {Name: "Vase"},
		"empty name":  {ID: "1"},
		"negative":    {ID: "1", Name: "Vase", Price: -1},
		"deal range":  {ID: "1", Name: "Vase", DiscountFraction: 2},
		"rating low":  {ID: "1", Name: "Vase", Comments: []Comment{{Rating: 0}}},
		"rating high": {ID: "1", Name: "Vase", Comments: []Comment{{Rating: 6}}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			if err := p.Validate(); !errors.Is(err, ErrInvalidProduct) {
				t.Fatalf("Validate() = %v, want ErrInvalidProduct", err)
			}
		})
	}
}

func TestCloneProductsIsDeep(t *testing.T) {
	if CloneProducts(nil) != nil {
		t.Fatalf("CloneProducts(nil) should be nil")
	}
	src := []Product{{ID: "1", Comments: []Comment{{Author: "a", Rating: 3}}}}
	dup := CloneProducts(src)
	dup[0].ID = "x"
	dup[0].Comments[0].Author = "b"
	if src[0].ID != "1" || src[0].Comments[0].Author != "a" {
		t.Fatalf("CloneProducts shares memory with source: %#v", src)
	}
}
