package routes

import (
	"pizza-storefront-api/handlers"
	"pizza-storefront-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog & banners (no auth needed)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/menu/:id", handlers.GetFoodItem)
		public.GET("/categories", handlers.GetCategories)
		public.GET("/banners", handlers.GetActiveBanners)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes (customer or admin) ───────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Cart
		auth.GET("/cart", handlers.GetCart)
		auth.GET("/cart/count", handlers.GetCartCount)
		auth.POST("/cart/items", handlers.AddToCart)
		auth.PUT("/cart/items/:id", handlers.UpdateCartItem)
		auth.DELETE("/cart/items/:id", handlers.RemoveCartItem)

		// Checkout & order history
		auth.POST("/checkout", handlers.Checkout)
		auth.GET("/orders", handlers.GetMyOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		// Catalog management
		admin.GET("/food", handlers.AdminListFood)
		admin.POST("/food", handlers.AdminCreateFood)
		admin.PUT("/food/:id", handlers.AdminUpdateFood)
		admin.DELETE("/food/:id", handlers.AdminDeleteFood)

		// Order management
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.GET("/orders/:id", handlers.AdminGetOrder)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)

		// Banner management
		admin.GET("/banners", handlers.AdminListBanners)
		admin.POST("/banners", handlers.AdminCreateBanner)
		admin.PUT("/banners/:id", handlers.AdminUpdateBanner)
		admin.DELETE("/banners/:id", handlers.AdminDeleteBanner)

		// Users
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
