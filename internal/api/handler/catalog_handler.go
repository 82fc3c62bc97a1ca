package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

// CatalogHandler serves the read-only product and order reference data
// the return wizard is built from.
type CatalogHandler struct {
	catalog ports.CatalogRepository
}

func NewCatalogHandler(catalog ports.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /v1/products.
//
// @Summary      List catalog products
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListOrders handles GET /v1/orders. Clients get their own order history;
// admins may inspect any client's via the client_email query parameter.
//
// @Summary      List orders for a client
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        client_email  query     string  false  "Client email (admin only; clients always get their own)"
// @Success      200           {array}   domain.Order
// @Failure      400           {object}  errorResponse
// @Failure      401           {object}  errorResponse
// @Router       /v1/orders [get]
func (h *CatalogHandler) ListOrders(c echo.Context) error {
	role, email, err := ctxClaims(c)
	if err != nil {
		return err
	}

	target := email
	if role == domain.RoleAdmin {
		target = c.QueryParam("client_email")
	}
	if target == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_email is required")
	}

	orders, err := h.catalog.ListOrdersByClient(c.Request().Context(), target)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
