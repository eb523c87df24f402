package domain

import "time"

// Order statuses used by the back office. The backend owns the lifecycle;
// these are the values the storefront displays and submits.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// OrderItem is a purchased line inside an order.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is an order record as returned by the commerce backend.
type Order struct {
	ID              int         `json:"id"`
	UserEmail       string      `json:"userEmail"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	PaymentStatus   string      `json:"paymentStatus"`
	OrderStatus     string      `json:"orderStatus"`
	ShippingAddress string      `json:"shippingAddress"`
	PhoneNumber     string      `json:"phoneNumber"`
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
}

// ShippingDetails is the checkout form. Validation happens once at the HTTP
// boundary; by the time it reaches the checkout service every field is set.
type ShippingDetails struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	Pincode  string
}

// AddressLine renders the single-line shipping address the backend expects.
func (s ShippingDetails) AddressLine() string {
	return s.Address + ", " + s.City + ", " + s.State + " - " + s.Pincode
}
