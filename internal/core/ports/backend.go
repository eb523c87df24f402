package ports

import (
	"context"
	"io"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

// SigninResult is the backend's answer to a successful sign-in. The token is
// authoritative; id/email/name are convenience copies of its claims.
type SigninResult struct {
	AccessToken string
	ID          int
	Email       string
	Name        string
}

// SignupInput carries the registration form as the backend expects it.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthAPI is the external authentication collaborator.
type AuthAPI interface {
	Signin(ctx context.Context, email, password string) (*SigninResult, error)
	Signup(ctx context.Context, in SignupInput) error
}

// Upload is an optional file attached to a multipart create/update call.
type Upload struct {
	FileName string
	Content  io.Reader
}

// CategoryUpsert is the payload for creating or updating a category.
type CategoryUpsert struct {
	Name        string
	Description string
	Image       *Upload
}

// ProductUpsert is the payload for creating or updating a product.
type ProductUpsert struct {
	Name        string
	Description string
	Price       float64
	CategoryID  int
	Stock       int
	Image       *Upload
}

// CatalogAPI covers the category and product endpoints of the backend.
type CatalogAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in CategoryUpsert) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, in CategoryUpsert) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
	CategoryProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, in ProductUpsert) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, in ProductUpsert) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// CreateOrderInput mirrors the order payload the backend accepts. Payment is
// simulated: PaymentStatus is always submitted as successful.
type CreateOrderInput struct {
	UserEmail       string
	Items           []domain.OrderItem
	TotalAmount     float64
	PaymentStatus   string
	OrderStatus     string
	ShippingAddress string
	PhoneNumber     string
}

// OrderAPI covers the order endpoints of the backend.
type OrderAPI interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	OrdersByUser(ctx context.Context, email string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) error
}
