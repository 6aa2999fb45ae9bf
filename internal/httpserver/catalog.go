package httpserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/micromarket/backend/internal/logging"
	"github.com/micromarket/backend/internal/service"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *CatalogHTTP) ListSuppliers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.suppliers")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), 0)

	suppliers, err := h.Svc.ListSuppliers(ctx, page, size)
	if err != nil {
		l.Error("list_suppliers_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, suppliers)
}

func (h *CatalogHTTP) ListSupplierProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.supplier_products")

	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("list_products_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), 0)

	products, err := h.Svc.ListSupplierProducts(ctx, supplierID, page, size)
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, products)
}
