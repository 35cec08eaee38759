// Package seed reads the catalog file catalogd serves. Files are YAML; since
// YAML accepts JSON, a dump of GET /Assignment works as a seed unchanged.
package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/five82/artshelf/internal/gallery"
)

// File is the document form of a seed: a list under "products". A bare
// top-level list is accepted too.
type File struct {
	Products []Product `yaml:"products"`
}

// Product uses the catalog wire names so seeds read like API payloads.
type Product struct {
	ID           string    `yaml:"id"`
	Name         string    `yaml:"artName"`
	Price        float64   `yaml:"price"`
	Description  string    `yaml:"description"`
	Brand        string    `yaml:"brand"`
	GlassSurface bool      `yaml:"glassSurface"`
	Image        string    `yaml:"image"`
	Deal         float64   `yaml:"limitedTimeDeal"`
	Comments     []Comment `yaml:"comments"`
}

// Comment is a seed review.
type Comment struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
	Rating  int    `yaml:"rating"`
}

// LoadFile reads and parses the seed at path.
func LoadFile(path string) ([]gallery.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	products, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return products, nil
}

// Parse decodes a seed document, fills defaults and validates every product.
func Parse(data []byte) ([]gallery.Product, error) {
	var f File
	if err := yaml.Unmarshal(data, &f.Products); err != nil {
		f = File{}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse seed: %w", err)
		}
	}

	applyDefaults(&f)

	products := make([]gallery.Product, 0, len(f.Products))
	seen := make(map[string]int, len(f.Products))
	for i, sp := range f.Products {
		p := sp.toProduct()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		if prev, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("product %d: %w: duplicate id %s (first at %d)", i, gallery.ErrInvalidProduct, p.ID, prev)
		}
		seen[p.ID] = i
		products = append(products, p)
	}
	return products, nil
}

// applyDefaults trims text fields and assigns ids to products without one.
func applyDefaults(f *File) {
	for i := range f.Products {
		p := &f.Products[i]
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.Name = strings.TrimSpace(p.Name)
		p.Brand = strings.TrimSpace(p.Brand)
	}
}

func (p Product) toProduct() gallery.Product {
	out := gallery.Product{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		Description:      p.Description,
		Brand:            p.Brand,
		GlassSurface:     p.GlassSurface,
		ImageRef:         p.Image,
		DiscountFraction: p.Deal,
	}
	for _, c := range p.Comments {
		out.Comments = append(out.Comments, gallery.Comment(c))
	}
	return out
}
