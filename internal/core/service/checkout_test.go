package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

type stubOrderAPI struct {
	created   []ports.CreateOrderInput
	createErr error
}

func (s *stubOrderAPI) CreateOrder(_ context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, in)
	return &domain.Order{
		ID:          101,
		UserEmail:   in.UserEmail,
		Items:       in.Items,
		TotalAmount: in.TotalAmount,
		OrderStatus: in.OrderStatus,
	}, nil
}

func (s *stubOrderAPI) GetOrder(_ context.Context, _ int) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (s *stubOrderAPI) ListOrders(_ context.Context) ([]domain.Order, error) { return nil, nil }

func (s *stubOrderAPI) OrdersByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderAPI) UpdateOrderStatus(_ context.Context, _ int, _ string) error { return nil }

func shippingForm() domain.ShippingDetails {
	return domain.ShippingDetails{
		FullName: "Shopper",
		Email:    "shopper@example.com",
		Phone:    "9876543210",
		Address:  "12 Teak Lane",
		City:     "Pune",
		State:    "MH",
		Pincode:  "411001",
	}
}

func TestCheckout_PlaceOrderClearsCart(t *testing.T) {
	orders := &stubOrderAPI{}
	svc := NewCheckout(orders, zerolog.Nop())

	cart := NewCart()
	cart.Add(chair())
	cart.Add(chair())
	cart.Add(table())

	user := &domain.User{Email: "shopper@example.com", Role: domain.RoleUser}
	order, err := svc.PlaceOrder(context.Background(), user, cart, shippingForm())
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if order.ID != 101 {
		t.Fatalf("unexpected order id: %d", order.ID)
	}
	if cart.ItemCount() != 0 {
		t.Fatalf("expected cart cleared after order, got %d items", cart.ItemCount())
	}

	in := orders.created[0]
	if in.TotalAmount != 450 {
		t.Fatalf("expected total 450, got %v", in.TotalAmount)
	}
	if in.PaymentStatus != "Success" || in.OrderStatus != domain.OrderStatusProcessing {
		t.Fatalf("unexpected statuses: %+v", in)
	}
	if in.ShippingAddress != "12 Teak Lane, Pune, MH - 411001" {
		t.Fatalf("unexpected shipping address: %s", in.ShippingAddress)
	}
	if len(in.Items) != 2 || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
}

func TestCheckout_BackendFailureKeepsCart(t *testing.T) {
	orders := &stubOrderAPI{createErr: domain.ErrBackend}
	svc := NewCheckout(orders, zerolog.Nop())

	cart := NewCart()
	cart.Add(chair())

	user := &domain.User{Email: "shopper@example.com"}
	if _, err := svc.PlaceOrder(context.Background(), user, cart, shippingForm()); !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("expected ErrBackend, got %v", err)
	}
	if cart.ItemCount() != 1 {
		t.Fatalf("expected cart untouched on failure, got %d items", cart.ItemCount())
	}
}

func TestCheckout_RequiresAuthenticatedUser(t *testing.T) {
	svc := NewCheckout(&stubOrderAPI{}, zerolog.Nop())
	cart := NewCart()
	cart.Add(chair())

	if _, err := svc.PlaceOrder(context.Background(), nil, cart, shippingForm()); !errors.Is(err, domain.ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}

func TestCheckout_RejectsEmptyCart(t *testing.T) {
	svc := NewCheckout(&stubOrderAPI{}, zerolog.Nop())
	user := &domain.User{Email: "shopper@example.com"}

	if _, err := svc.PlaceOrder(context.Background(), user, NewCart(), shippingForm()); !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}
