package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
)

// CatalogHandler serves the public product and category endpoints. Reads go
// through the cached catalog service, never straight to the backend.
type CatalogHandler struct {
	catalog *service.Catalog
}

func NewCatalogHandler(catalog *service.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Categories lists all catalog categories.
//
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      502  {object}  map[string]string
// @Router       /categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// CategoryProductCounts reports how many products each category holds.
//
// @Summary      Product counts per category
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.CategoryProductCount
// @Failure      502  {object}  map[string]string
// @Router       /categories/product-count [get]
func (h *CatalogHandler) CategoryProductCounts(c echo.Context) error {
	counts, err := h.catalog.ProductCounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// Products lists catalog products, optionally narrowed by category name or a
// free-text search term.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Filter by category name"
// @Param        search    query     string  false  "Filter by name substring"
// @Success      200       {array}   domain.Product
// @Failure      502       {object}  map[string]string
// @Router       /products [get]
func (h *CatalogHandler) Products(c echo.Context) error {
	products, err := h.catalog.Products(c.Request().Context())
	if err != nil {
		return err
	}

	category := c.QueryParam("category")
	search := c.QueryParam("search")
	if category == "" && search == "" {
		return c.JSON(http.StatusOK, products)
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		filtered = append(filtered, p)
	}
	return c.JSON(http.StatusOK, filtered)
}

// Product fetches a single product by id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *CatalogHandler) Product(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.catalog.Product(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
