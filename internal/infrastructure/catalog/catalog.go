// Package catalog loads the static product catalog served by the products
// endpoint. The catalog is read once at start-up and never modified.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/webshop/storefront-api/internal/core/domain"
)

//go:embed products.json
var embeddedProducts []byte

// Catalog is an immutable list of products safe for concurrent use.
type Catalog struct {
	products []domain.Product
}

// Load reads the catalog from path, or from the embedded products.json when
// path is empty.
func Load(path string) (*Catalog, error) {
	raw := embeddedProducts
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse builds a Catalog from a JSON array of products.
func Parse(raw []byte) (*Catalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("catalog: product %d: id and name are required", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog: product %s: negative price", p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %s", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	if len(products) == 0 {
		return nil, errors.New("catalog: no products")
	}

	return &Catalog{products: products}, nil
}

// All returns a copy of every product, in file order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
