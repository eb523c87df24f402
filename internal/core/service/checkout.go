package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

// Checkout turns the cart into an order on the commerce backend. There is no
// real payment step: the payment status is submitted as successful and the
// order starts in Processing, matching what the backend expects.
type Checkout struct {
	orders ports.OrderAPI
	log    zerolog.Logger
}

func NewCheckout(orders ports.OrderAPI, log zerolog.Logger) *Checkout {
	return &Checkout{orders: orders, log: log}
}

// PlaceOrder submits the cart as an order for the authenticated user. The
// cart is cleared only after the backend confirms the order; any failure
// leaves it intact so the user can retry.
func (s *Checkout) PlaceOrder(ctx context.Context, user *domain.User, cart *Cart, shipping domain.ShippingDetails) (*domain.Order, error) {
	if user == nil {
		return nil, domain.ErrSessionRequired
	}

	view := cart.View()
	if len(view.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	items := make([]domain.OrderItem, 0, len(view.Items))
	for _, line := range view.Items {
		items = append(items, domain.OrderItem{
			ProductID:   line.ID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}

	order, err := s.orders.CreateOrder(ctx, ports.CreateOrderInput{
		UserEmail:       user.Email,
		Items:           items,
		TotalAmount:     view.Total,
		PaymentStatus:   "Success",
		OrderStatus:     domain.OrderStatusProcessing,
		ShippingAddress: shipping.AddressLine(),
		PhoneNumber:     shipping.Phone,
	})
	if err != nil {
		s.log.Error().Err(err).Str("email", user.Email).Msg("order creation failed")
		return nil, err
	}

	cart.Clear()
	s.log.Info().Int("order_id", order.ID).Str("email", user.Email).Float64("total", view.Total).Msg("order placed")
	return order, nil
}
