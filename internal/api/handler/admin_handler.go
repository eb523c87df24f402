package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
)

// AdminHandler owns the back-office endpoints: category and product
// management plus the order dashboard. Route-level gating guarantees every
// caller is an authenticated admin before these run.
type AdminHandler struct {
	catalog *service.Catalog
	orders  ports.OrderAPI
}

func NewAdminHandler(catalog *service.Catalog, orders ports.OrderAPI) *AdminHandler {
	return &AdminHandler{catalog: catalog, orders: orders}
}

// formImage pulls the optional "image" upload out of a multipart form. The
// returned closer is non-nil only when a file was attached.
func formImage(c echo.Context) (*ports.Upload, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// Absent file is fine; the backend keeps the existing image.
		return nil, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}
	return &ports.Upload{FileName: fh.Filename, Content: f}, func() { _ = f.Close() }, nil
}

func pathID(c echo.Context, what string) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+what+" id")
	}
	return id, nil
}

// --- Categories ---

// CreateCategory creates a category from a multipart form with an optional
// image upload.
//
// @Summary      Create a category
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Category name"
// @Param        description  formData  string  false  "Category description"
// @Param        image        formData  file    false  "Category image"
// @Success      201          {object}  domain.Category
// @Failure      400          {object}  map[string]string
// @Router       /admin/categories [post]
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return err
	}
	if closeImage != nil {
		defer closeImage()
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), ports.CategoryUpsert{
		Name:        name,
		Description: c.FormValue("description"),
		Image:       image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory renames a category. The backend does not support replacing
// a category image in place, so updates are name and description only.
//
// @Summary      Update a category
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      int     true   "Category id"
// @Param        name         formData  string  true   "Category name"
// @Param        description  formData  string  false  "Category description"
// @Success      200          {object}  domain.Category
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	category, err := h.catalog.UpdateCategory(c.Request().Context(), id, ports.CategoryUpsert{
		Name:        name,
		Description: c.FormValue("description"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category.
//
// @Summary      Delete a category
// @Tags         admin
// @Param        id  path  int  true  "Category id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Products ---

func productUpsertFromForm(c echo.Context) (ports.ProductUpsert, func(), error) {
	name := c.FormValue("name")
	if name == "" {
		return ports.ProductUpsert{}, nil, echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return ports.ProductUpsert{}, nil, echo.NewHTTPError(http.StatusBadRequest, "price must be a positive number")
	}
	categoryID, err := strconv.Atoi(c.FormValue("category_id"))
	if err != nil {
		return ports.ProductUpsert{}, nil, echo.NewHTTPError(http.StatusBadRequest, "category_id must be a number")
	}
	stock := 0
	if raw := c.FormValue("stock"); raw != "" {
		if stock, err = strconv.Atoi(raw); err != nil || stock < 0 {
			return ports.ProductUpsert{}, nil, echo.NewHTTPError(http.StatusBadRequest, "stock must be a non-negative number")
		}
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return ports.ProductUpsert{}, nil, err
	}

	return ports.ProductUpsert{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		CategoryID:  categoryID,
		Stock:       stock,
		Image:       image,
	}, closeImage, nil
}

// CreateProduct creates a product from a multipart form with an optional
// image upload.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Product name"
// @Param        price        formData  number  true   "Unit price"
// @Param        category_id  formData  int     true   "Category id"
// @Param        description  formData  string  false  "Product description"
// @Param        stock        formData  int     false  "Units in stock"
// @Param        image        formData  file    false  "Product image"
// @Success      201          {object}  domain.Product
// @Failure      400          {object}  map[string]string
// @Router       /admin/products [post]
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	in, closeImage, err := productUpsertFromForm(c)
	if err != nil {
		return err
	}
	if closeImage != nil {
		defer closeImage()
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces a product's fields, optionally including its image.
//
// @Summary      Update a product
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}
	in, closeImage, err := productUpsertFromForm(c)
	if err != nil {
		return err
	}
	if closeImage != nil {
		defer closeImage()
	}

	product, err := h.catalog.UpdateProduct(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product.
//
// @Summary      Delete a product
// @Tags         admin
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Orders ---

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Processing Shipped Delivered Cancelled"`
}

// Orders lists every order for the back-office dashboard.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.Order
// @Router       /admin/orders [get]
func (h *AdminHandler) Orders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus moves an order along its lifecycle.
//
// @Summary      Update an order's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "order")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.orders.UpdateOrderStatus(c.Request().Context(), id, req.Status); err != nil {
		return err
	}

	order, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
