package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop/storefront-api/internal/core/ports"
)

// ProductHandler serves the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns the full catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   productResponse
// @Failure      401  {object}  errorBody
// @Failure      406  {object}  errorBody
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}
