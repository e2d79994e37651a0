package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-backend/handlers"
	"restaurant-backend/middleware"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api/public")
	{
		public.GET("/restaurant", handlers.RestaurantInfo)
		public.GET("/menu", handlers.ListMenu)
		public.GET("/menu/featured", handlers.FeaturedMenu)
		public.GET("/menu/category/:category", handlers.MenuByCategory)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/hours", handlers.ListHours)
		public.GET("/settings", handlers.GetSettings)
	}

	// Contact form submission
	r.POST("/api/contact", handlers.SubmitContact)

	// Login and logout stay outside the session check
	r.POST("/api/admin/login", handlers.Login)
	r.POST("/api/admin/logout", handlers.Logout)

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	{
		admin.GET("/session", handlers.Session)

		admin.GET("/menu", handlers.ListMenu)
		admin.POST("/menu", handlers.CreateMenuItem)
		admin.GET("/menu/category/:category", handlers.MenuByCategory)
		admin.GET("/menu/:id", handlers.GetMenuItem)
		admin.PUT("/menu/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem)

		admin.GET("/categories", handlers.ListCategories)
		admin.POST("/categories", handlers.CreateCategory)
		admin.PUT("/categories/:id", handlers.UpdateCategory)

		admin.GET("/hours", handlers.ListHours)
		admin.PUT("/hours", handlers.UpdateHoursBulk)
		admin.PUT("/hours/:id", handlers.UpdateHoursRow)

		admin.GET("/settings", handlers.GetSettings)
		admin.PUT("/settings/hero-image", handlers.UpdateHeroImage)
		admin.POST("/settings/hero-image/upload", handlers.UploadHeroImage)

		admin.GET("/contacts", handlers.ListContacts)
		admin.DELETE("/contacts/:id", handlers.DeleteContact)

		admin.GET("/users", handlers.ListAdminUsers)
		admin.POST("/users", handlers.CreateAdminUser)
		admin.DELETE("/users/:id", handlers.DeleteAdminUser)
	}
}
