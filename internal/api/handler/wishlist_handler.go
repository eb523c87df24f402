package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
)

// WishlistHandler exposes the durable wishlist. Anonymous visitors get a
// wishlist keyed by their session id; signed-in users get one keyed by email
// so it follows them across browsers.
type WishlistHandler struct {
	wishlist *service.Wishlist
}

func NewWishlistHandler(wishlist *service.Wishlist) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

func wishlistOwner(c echo.Context) (string, error) {
	sess, err := ctxSession(c)
	if err != nil {
		return "", err
	}
	if user := sess.User(); user != nil {
		return user.Email, nil
	}
	return sess.ID(), nil
}

type toggleWishlistRequest struct {
	ProductID int     `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gt=0"`
	Image     string  `json:"image"`
}

type toggleWishlistResponse struct {
	Added bool                  `json:"added"`
	Items []domain.WishlistItem `json:"items"`
}

// List returns the wishlist for the current visitor.
//
// @Summary      List wishlist items
// @Tags         wishlist
// @Produce      json
// @Success      200  {array}  domain.WishlistItem
// @Router       /wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	owner, err := wishlistOwner(c)
	if err != nil {
		return err
	}

	items, err := h.wishlist.List(c.Request().Context(), owner)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Toggle adds the product when absent and removes it when present.
//
// @Summary      Toggle a wishlist item
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Param        body  body      toggleWishlistRequest  true  "Product to toggle"
// @Success      200   {object}  toggleWishlistResponse
// @Failure      400   {object}  map[string]string
// @Router       /wishlist [post]
func (h *WishlistHandler) Toggle(c echo.Context) error {
	var req toggleWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	owner, err := wishlistOwner(c)
	if err != nil {
		return err
	}

	added, err := h.wishlist.Toggle(c.Request().Context(), owner, domain.WishlistItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
	})
	if err != nil {
		return err
	}

	items, err := h.wishlist.List(c.Request().Context(), owner)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleWishlistResponse{Added: added, Items: items})
}

// Remove deletes a product from the wishlist. Removing a product that is not
// on the list is not an error.
//
// @Summary      Remove a wishlist item
// @Tags         wishlist
// @Produce      json
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Router       /wishlist/{id} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	owner, err := wishlistOwner(c)
	if err != nil {
		return err
	}

	if err := h.wishlist.Remove(c.Request().Context(), owner, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
