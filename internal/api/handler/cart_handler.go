package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/api/metrics"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

// CartHandler exposes the per-session cart. Everything here is in-memory;
// nothing touches the commerce backend until checkout.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type addCartItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gt=0"`
	Image     string  `json:"image"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// View returns the cart with its derived item count and total.
//
// @Summary      View the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  domain.CartView
// @Router       /cart [get]
func (h *CartHandler) View(c echo.Context) error {
	cart, err := ctxCart(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart.View())
}

// Add puts a product in the cart, or bumps its quantity when it is already
// there.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Product to add"
// @Success      200   {object}  domain.CartView
// @Failure      400   {object}  map[string]string
// @Router       /cart/items [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := ctxCart(c)
	if err != nil {
		return err
	}

	cart.Add(domain.CartProduct{
		ID:    req.ProductID,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	})
	metrics.CartOperationsTotal.WithLabelValues("add").Inc()

	return c.JSON(http.StatusOK, cart.View())
}

// UpdateQuantity sets an exact quantity for a cart line. Zero removes it.
//
// @Summary      Update a cart line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Product id"
// @Param        body  body      updateCartItemRequest  true  "New quantity"
// @Success      200   {object}  domain.CartView
// @Failure      400   {object}  map[string]string
// @Router       /cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := ctxCart(c)
	if err != nil {
		return err
	}

	cart.UpdateQuantity(c.Param("id"), req.Quantity)
	metrics.CartOperationsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, cart.View())
}

// Remove takes a product out of the cart regardless of quantity.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.CartView
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	cart, err := ctxCart(c)
	if err != nil {
		return err
	}

	cart.Remove(c.Param("id"))
	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()

	return c.JSON(http.StatusOK, cart.View())
}

// Clear empties the cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  domain.CartView
// @Router       /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	cart, err := ctxCart(c)
	if err != nil {
		return err
	}

	cart.Clear()
	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()

	return c.JSON(http.StatusOK, cart.View())
}
