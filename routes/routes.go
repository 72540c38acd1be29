package routes

import (
	"food-marketplace-api/auth"
	"food-marketplace-api/handlers"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRoutes(r *gin.Engine) {
	handlers.RegisterValidations()

	// Shared limiter for both login channels
	loginLimit := middleware.RateLimit(rate.Limit(5), 10)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", loginLimit, handlers.Login)
		public.POST("/auth/customer-login", loginLimit, handlers.CustomerLogin)
		public.POST("/auth/logout", handlers.Logout)

		// Browse (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/categories", handlers.ListRestaurantCategories)
		public.GET("/restaurants/:id/products", handlers.ListRestaurantProducts)
		public.GET("/restaurants/:id/reviews", handlers.ListRestaurantReviews)
		public.GET("/products/:id", handlers.GetProduct)
		public.GET("/products/:id/reviews", handlers.ListProductReviews)

		// Lifecycle reference for API consumers
		public.GET("/order-lifecycle", handlers.GetOrderLifecycle)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/profile", handlers.GetProfile)
		authed.PUT("/profile", handlers.UpdateProfile)
		authed.PUT("/profile/password", handlers.ChangePassword)
		authed.POST("/upload",
			middleware.RoleRequired(models.RoleRestaurator, models.RoleAdmin),
			handlers.Upload)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.PUT("/orders/:id/cancel", handlers.CancelOrder)
		customer.POST("/reviews", handlers.CreateReview)
	}

	// ── Restaurant manager routes ──────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurator, models.RoleAdmin))
	{
		restaurant.GET("/profile", handlers.GetMyRestaurant)
		restaurant.PUT("/profile",
			middleware.PermissionRequired(auth.PermRestaurantProfileEdit),
			handlers.UpdateMyRestaurant)

		restaurant.GET("/categories",
			middleware.PermissionRequired(auth.PermRestaurantCategoryView),
			handlers.ListMyCategories)
		restaurant.POST("/categories",
			middleware.PermissionRequired(auth.PermRestaurantCategoryEdit),
			handlers.CreateCategory)
		restaurant.PUT("/categories/:id",
			middleware.PermissionRequired(auth.PermRestaurantCategoryEdit),
			handlers.UpdateCategory)
		restaurant.DELETE("/categories/:id",
			middleware.PermissionRequired(auth.PermRestaurantCategoryEdit),
			handlers.DeleteCategory)

		restaurant.GET("/products",
			middleware.PermissionRequired(auth.PermRestaurantProductsView),
			handlers.ListMyProducts)
		restaurant.POST("/products",
			middleware.PermissionRequired(auth.PermRestaurantProductsEdit),
			handlers.CreateProduct)
		restaurant.PUT("/products/:id",
			middleware.PermissionRequired(auth.PermRestaurantProductsEdit),
			handlers.UpdateProduct)
		restaurant.DELETE("/products/:id",
			middleware.PermissionRequired(auth.PermRestaurantProductsEdit),
			handlers.DeleteProduct)

		restaurant.GET("/orders",
			middleware.PermissionRequired(auth.PermRestaurantOrdersView),
			handlers.GetRestaurantOrders)
		restaurant.GET("/orders/:id",
			middleware.PermissionRequired(auth.PermRestaurantOrdersView),
			handlers.GetRestaurantOrder)
		restaurant.PUT("/orders/:id/status",
			middleware.PermissionRequired(auth.PermRestaurantOrdersEdit),
			handlers.UpdateOrderStatus)

		restaurant.GET("/stats",
			middleware.PermissionRequired(auth.PermRestaurantStatsView),
			handlers.GetRestaurantStats)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/restaurants", handlers.AdminListRestaurants)
		admin.POST("/restaurants", handlers.AdminCreateRestaurant)
		admin.PUT("/restaurants/:id", handlers.AdminUpdateRestaurant)
		admin.DELETE("/restaurants/:id", handlers.AdminDeleteRestaurant)

		admin.GET("/users", handlers.AdminListUsers)
		admin.POST("/users", handlers.AdminCreateUser)
		admin.PUT("/users/:id", handlers.AdminUpdateUser)
		admin.DELETE("/users/:id", handlers.AdminDeactivateUser)
		admin.PUT("/users/:id/restaurant", handlers.AdminAssignRestaurant)

		admin.GET("/orders", handlers.AdminListOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)

		admin.GET("/finances", handlers.AdminListFinances)
		admin.GET("/finances/export", handlers.AdminExportFinancesCSV)
	}

	// ── Browser pages ──────────────────────────────────────────────
	r.GET("/login", handlers.LoginPage)

	adminPages := r.Group("/admin")
	adminPages.Use(middleware.PageGuard())
	adminPages.GET("/*page", handlers.StaffPage)

	restaurantPages := r.Group("/restaurant")
	restaurantPages.Use(middleware.PageGuard())
	restaurantPages.GET("/*page", handlers.StaffPage)
}
