package gallery

import (
	"errors"
	"fmt"
	"strings"
)

// Comment is a single customer review attached to a product.
type Comment struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Product mirrors one element of the /Assignment payload. Field names on the
// wire follow the catalog API, not the Go names.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"artName"`
	Price            float64   `json:"price"`
	Description      string    `json:"description"`
	Brand            string    `json:"brand"`
	GlassSurface     bool      `json:"glassSurface"`
	ImageRef         string    `json:"image"`
	DiscountFraction float64   `json:"limitedTimeDeal"`
	Comments         []Comment `json:"comments"`
}

const (
	minRating = 1
	maxRating = 5
)

// ErrInvalidProduct is wrapped by Validate failures.
var ErrInvalidProduct = errors.New("invalid product")

// HasDeal reports whether a limited-time discount is active.
func (p Product) HasDeal() bool {
	return p.DiscountFraction > 0
}

// DiscountedPrice applies the limited-time deal to the list price. Out of
// range fractions are clamped to [0,1].
func (p Product) DiscountedPrice() float64 {
	fraction := p.DiscountFraction
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return p.Price * (1 - fraction)
}

// AverageRating returns the mean comment rating, or zero without comments.
func (p Product) AverageRating() float64 {
	if len(p.Comments) == 0 {
		return 0
	}
	total := 0
	for _, c := range p.Comments {
		total += c.Rating
	}
	return float64(total) / float64(len(p.Comments))
}

// Validate performs the shape checks catalogd applies to seed data.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product %s has no name", ErrInvalidProduct, p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: product %s has negative price %v", ErrInvalidProduct, p.ID, p.Price)
	}
	if p.DiscountFraction < 0 || p.DiscountFraction > 1 {
		return fmt.Errorf("%w: product %s deal %v outside [0,1]", ErrInvalidProduct, p.ID, p.DiscountFraction)
	}
	for i, c := range p.Comments {
		if c.Rating < minRating || c.Rating > maxRating {
			return fmt.Errorf("%w: product %s comment %d rating %d outside [%d,%d]",
				ErrInvalidProduct, p.ID, i, c.Rating, minRating, maxRating)
		}
	}
	return nil
}

// CloneProducts returns an independent copy of products, including comments.
func CloneProducts(products []Product) []Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]Product, len(products))
	for i, p := range products {
		dup[i] = p
		if len(p.Comments) > 0 {
			dup[i].Comments = append([]Comment(nil), p.Comments...)
		}
	}
	return dup
}
