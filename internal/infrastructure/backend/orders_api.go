package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

type orderItemRecord struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type orderRecord struct {
	ID              int               `json:"id"`
	UserEmail       string            `json:"userEmail"`
	Items           []orderItemRecord `json:"items"`
	TotalAmount     float64           `json:"totalAmount"`
	PaymentStatus   string            `json:"paymentStatus"`
	OrderStatus     string            `json:"orderStatus"`
	ShippingAddress string            `json:"shippingAddress"`
	PhoneNumber     string            `json:"phoneNumber"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func (r orderRecord) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return domain.Order{
		ID:              r.ID,
		UserEmail:       r.UserEmail,
		Items:           items,
		TotalAmount:     r.TotalAmount,
		PaymentStatus:   r.PaymentStatus,
		OrderStatus:     r.OrderStatus,
		ShippingAddress: r.ShippingAddress,
		PhoneNumber:     r.PhoneNumber,
		CreatedAt:       r.CreatedAt,
	}
}

type createOrderRequest struct {
	UserEmail       string            `json:"userEmail"`
	Items           []orderItemRecord `json:"items"`
	TotalAmount     float64           `json:"totalAmount"`
	PaymentStatus   string            `json:"paymentStatus"`
	OrderStatus     string            `json:"orderStatus"`
	ShippingAddress string            `json:"shippingAddress"`
	PhoneNumber     string            `json:"phoneNumber"`
}

// CreateOrder posts the checkout payload to POST /orders/create.
func (c *Client) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	items := make([]orderItemRecord, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, orderItemRecord{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/orders/create", createOrderRequest{
		UserEmail:       in.UserEmail,
		Items:           items,
		TotalAmount:     in.TotalAmount,
		PaymentStatus:   in.PaymentStatus,
		OrderStatus:     in.OrderStatus,
		ShippingAddress: in.ShippingAddress,
		PhoneNumber:     in.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	var record orderRecord
	if err := c.roundTrip("order_create", req, &record, false); err != nil {
		return nil, err
	}
	order := record.toDomain()
	return &order, nil
}

func (c *Client) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	var record orderRecord
	if err := c.getJSON(ctx, "order_get", "/orders/"+strconv.Itoa(id), &record); err != nil {
		return nil, err
	}
	order := record.toDomain()
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var records []orderRecord
	if err := c.getJSON(ctx, "orders_list", "/orders", &records); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, r.toDomain())
	}
	return orders, nil
}

func (c *Client) OrdersByUser(ctx context.Context, email string) ([]domain.Order, error) {
	var records []orderRecord
	if err := c.getJSON(ctx, "orders_by_user", "/orders/user/"+url.PathEscape(email), &records); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, r.toDomain())
	}
	return orders, nil
}

// UpdateOrderStatus mirrors the back office's PUT /orders/{id}/status?status=X.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	path := "/orders/" + strconv.Itoa(id) + "/status?status=" + url.QueryEscape(status)
	req, err := c.newJSONRequest(ctx, http.MethodPut, path, nil)
	if err != nil {
		return err
	}
	return c.roundTrip("order_update_status", req, nil, false)
}
