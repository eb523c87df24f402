package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/api/metrics"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
)

// OrderHandler owns checkout and the signed-in user's order history.
type OrderHandler struct {
	checkout *service.Checkout
	orders   ports.OrderAPI
}

func NewOrderHandler(checkout *service.Checkout, orders ports.OrderAPI) *OrderHandler {
	return &OrderHandler{checkout: checkout, orders: orders}
}

type checkoutRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Pincode  string `json:"pincode" validate:"required,min=6"`
}

// Checkout places an order for the session's cart and clears it on success.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Shipping details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /checkout [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	cart, err := ctxCart(c)
	if err != nil {
		return err
	}

	order, err := h.checkout.PlaceOrder(c.Request().Context(), sess.User(), cart, domain.ShippingDetails{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Pincode:  req.Pincode,
	})
	if err != nil {
		return err
	}
	metrics.OrdersPlacedTotal.Inc()

	return c.JSON(http.StatusCreated, order)
}

// MyOrders lists the signed-in user's orders, newest first as returned by
// the backend.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  map[string]string
// @Router       /orders/my [get]
func (h *OrderHandler) MyOrders(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	user := sess.User()
	if user == nil {
		return domain.ErrSessionRequired
	}

	orders, err := h.orders.OrdersByUser(c.Request().Context(), user.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Order fetches a single order. Regular users can only see their own.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) Order(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	user := sess.User()
	if user == nil {
		return domain.ErrSessionRequired
	}

	order, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleAdmin && order.UserEmail != user.Email {
		return domain.ErrNotFound
	}
	return c.JSON(http.StatusOK, order)
}
