package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/webshop/storefront-api/internal/core/domain"
)

type stubProductService struct {
	products []domain.Product
}

func (s *stubProductService) List(context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func TestProductHandler_List(t *testing.T) {
	e := newTestEcho()
	h := NewProductHandler(&stubProductService{products: []domain.Product{
		{ID: "p1", Name: "Mug", Description: "Stoneware", Price: 12.5},
		{ID: "p2", Name: "Tee", Description: "Cotton", Price: 20, Image: "tee.png"},
	}})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/products", nil), rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["_id"] != "p1" || resp[0]["price"] != 12.5 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp[0]["image"]; ok {
		t.Fatalf("empty image should be omitted")
	}
}
