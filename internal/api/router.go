package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/api/handler"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/api/middleware"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/gate"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
)

// Dependencies carries everything the router needs. Construction happens in
// main; the router only arranges routes and middleware around it.
type Dependencies struct {
	Sessions *service.SessionManager
	Catalog  *service.Catalog
	Checkout *service.Checkout
	Wishlist *service.Wishlist
	Orders   ports.OrderAPI

	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// Session resolution is scoped to storefront routes so health probes and
	// scrapers never mint sessions.
	store := e.Group("", middleware.Session(deps.Sessions))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler()
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	cartHandler := handler.NewCartHandler()
	orderHandler := handler.NewOrderHandler(deps.Checkout, deps.Orders)
	wishlistHandler := handler.NewWishlistHandler(deps.Wishlist)
	adminHandler := handler.NewAdminHandler(deps.Catalog, deps.Orders)

	// --- Auth & session ---
	store.POST("/auth/login", authHandler.Login)
	store.POST("/auth/register", authHandler.Register)
	store.POST("/auth/logout", authHandler.Logout)
	store.GET("/session", authHandler.Session)

	// --- Public catalog ---
	store.GET("/categories", catalogHandler.Categories)
	store.GET("/categories/product-count", catalogHandler.CategoryProductCounts)
	store.GET("/products", catalogHandler.Products)
	store.GET("/products/:id", catalogHandler.Product)

	// --- Cart (per-session, no auth needed) ---
	store.GET("/cart", cartHandler.View)
	store.DELETE("/cart", cartHandler.Clear)
	store.POST("/cart/items", cartHandler.Add)
	store.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
	store.DELETE("/cart/items/:id", cartHandler.Remove)

	// --- Wishlist (anonymous or signed-in) ---
	store.GET("/wishlist", wishlistHandler.List)
	store.POST("/wishlist", wishlistHandler.Toggle)
	store.DELETE("/wishlist/:id", wishlistHandler.Remove)

	// --- Checkout & order history (signed-in users only) ---
	requireUser := middleware.Gate(gate.RequireUser)
	store.POST("/checkout", orderHandler.Checkout, requireUser)
	store.GET("/orders/my", orderHandler.MyOrders, requireUser)
	store.GET("/orders/:id", orderHandler.Order, requireUser)

	// --- Back office (admins only) ---
	admin := store.Group("/admin", middleware.Gate(gate.RequireAdmin))
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.PUT("/categories/:id", adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.GET("/orders", adminHandler.Orders)
	admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
