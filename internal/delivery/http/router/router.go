// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	OrderHandler        *handler.OrderHandler
	UserHandler         *handler.UserHandler
	AdminProductHandler *handler.AdminProductHandler
	AdminOrderHandler   *handler.AdminOrderHandler
	AdminUserHandler    *handler.AdminUserHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	cartHandler         *handler.CartHandler
	checkoutHandler     *handler.CheckoutHandler
	orderHandler        *handler.OrderHandler
	userHandler         *handler.UserHandler
	adminProductHandler *handler.AdminProductHandler
	adminOrderHandler   *handler.AdminOrderHandler
	adminUserHandler    *handler.AdminUserHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		cartHandler:         params.CartHandler,
		checkoutHandler:     params.CheckoutHandler,
		orderHandler:        params.OrderHandler,
		userHandler:         params.UserHandler,
		adminProductHandler: params.AdminProductHandler,
		adminOrderHandler:   params.AdminOrderHandler,
		adminUserHandler:    params.AdminUserHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog, no authentication
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/google", r.userHandler.GoogleSignIn)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Self-service account routes
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.DELETE("/profile", r.userHandler.DeleteAccount)
	}

	// Session cart routes
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.PUT("", r.cartHandler.SetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItems)
		cartGroup.PUT("/items/:productId", r.cartHandler.SetItemQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
	}

	// Checkout and billing routes
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.Checkout)
		checkoutGroup.POST("/billing-portal", r.checkoutHandler.BillingPortal)
	}

	// Own-resource order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOwn)
		orderGroup.GET("/:id", r.orderHandler.GetOwn)
		orderGroup.DELETE("/:id/items/:itemId", r.orderHandler.DeleteOwnItem)
	}

	// Admin routes require authentication and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/products", r.adminProductHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminProductHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminProductHandler.DeleteProduct)

		adminGroup.GET("/orders", r.adminOrderHandler.ListOrders)
		adminGroup.DELETE("/orders/:id", r.adminOrderHandler.DeleteOrder)
		adminGroup.DELETE("/orders/:id/items/:itemId", r.adminOrderHandler.DeleteOrderItem)

		adminGroup.GET("/users", r.adminUserHandler.ListUsers)
		adminGroup.PUT("/users/:id/role", r.adminUserHandler.SetUserRole)
		adminGroup.PUT("/users/:id/status", r.adminUserHandler.SetUserStatus)
		adminGroup.DELETE("/users/:id", r.adminUserHandler.DeleteUser)
	}
}
