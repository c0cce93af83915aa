// Package router wires the API handlers and their access rules onto Echo.
package router

import (
	"grocery/internal/delivery/api/middleware"
	"grocery/internal/delivery/api/router/handler"
	"grocery/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProductHandler      *handler.ProductHandler
	SupermarketHandler  *handler.SupermarketHandler
	InventoryHandler    *handler.InventoryHandler
	ShoppingListHandler *handler.ShoppingListHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth         *handler.AuthHandler
	users        *handler.UserHandler
	products     *handler.ProductHandler
	supermarkets *handler.SupermarketHandler
	inventory    *handler.InventoryHandler
	shopping     *handler.ShoppingListHandler
	health       *handler.HealthHandler
	authMW       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:         params.AuthHandler,
		users:        params.UserHandler,
		products:     params.ProductHandler,
		supermarkets: params.SupermarketHandler,
		inventory:    params.InventoryHandler,
		shopping:     params.ShoppingListHandler,
		health:       params.HealthHandler,
		authMW:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMW.Authenticate

	e.GET("/health", r.health.Check)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/refresh", r.auth.Refresh)
		authGroup.POST("/logout", r.auth.Logout, authenticate)
	}

	apiV1 := e.Group("/api/v1")

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("", r.users.Register)
		usersGroup.GET("", r.users.List, authenticate)
		usersGroup.GET("/:email", r.users.Get, authenticate)
		usersGroup.PATCH("/:email", r.users.UpdatePassword, authenticate)
		usersGroup.DELETE("/:email", r.users.Delete, authenticate)
		usersGroup.POST("/:email/profile", r.users.CreateProfile, authenticate)
		usersGroup.PATCH("/:email/profile", r.users.UpdateProfile, authenticate)
	}

	productsGroup := apiV1.Group("/products")
	{
		productWrite := r.authMW.RequireRoles(policy.ProductWrite)

		productsGroup.GET("", r.products.List)
		productsGroup.GET("/:id", r.products.Get)
		productsGroup.POST("", r.products.Create, authenticate, productWrite)
		productsGroup.PUT("/:id", r.products.Update, authenticate, productWrite)
		productsGroup.DELETE("/:id", r.products.Delete, authenticate, productWrite)
	}

	supermarketsGroup := apiV1.Group("/supermarkets", authenticate)
	{
		supermarketRead := r.authMW.RequireRoles(policy.SupermarketRead)
		supermarketWrite := r.authMW.RequireRoles(policy.SupermarketWrite)

		supermarketsGroup.GET("", r.supermarkets.List, supermarketRead)
		supermarketsGroup.GET("/:id", r.supermarkets.Get, supermarketRead)
		supermarketsGroup.POST("", r.supermarkets.Create, supermarketWrite)
		supermarketsGroup.PATCH("/:id", r.supermarkets.Update, supermarketWrite)
		supermarketsGroup.DELETE("/:id", r.supermarkets.Delete, supermarketWrite)
	}

	inventoryGroup := apiV1.Group("/inventory", authenticate)
	{
		inventoryWrite := r.authMW.RequireRoles(policy.InventoryWrite)

		inventoryGroup.GET("", r.inventory.List)
		inventoryGroup.POST("", r.inventory.Create, inventoryWrite)
		inventoryGroup.PATCH("/:supermarketId/:productId", r.inventory.Update, inventoryWrite)
		inventoryGroup.DELETE("/:supermarketId/:productId", r.inventory.Delete, r.authMW.RequireRoles(policy.InventoryDelete))
	}

	shoppingGroup := apiV1.Group("/shopping-lists", authenticate)
	{
		shoppingGroup.POST("", r.shopping.Build)
		shoppingGroup.GET("", r.shopping.ListMine)
		shoppingGroup.POST("/qr", r.shopping.ResolveQR)
		shoppingGroup.GET("/:id", r.shopping.Get)
		shoppingGroup.GET("/:id/qr", r.shopping.QRCode)
	}
}
