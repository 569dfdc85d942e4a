package service

import (
	"context"

	"github.com/webshop/storefront-api/internal/core/domain"
)

// Catalog is the read-only product source loaded at start-up.
type Catalog interface {
	All() []domain.Product
}

// ProductService serves the product catalog.
type ProductService struct {
	catalog Catalog
}

func NewProductService(catalog Catalog) *ProductService {
	return &ProductService{catalog: catalog}
}

// List returns every product. The returned slice is owned by the caller.
func (s *ProductService) List(_ context.Context) ([]domain.Product, error) {
	return s.catalog.All(), nil
}
