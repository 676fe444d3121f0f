package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/auth"
	userControllers "github.com/shopsphere/ecommerce-api/controllers/user"
	"github.com/shopsphere/ecommerce-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register/", auth.RegisterHandler(db))
		authGroup.POST("/login/", auth.LoginHandler(db))
		authGroup.POST("/refresh/", auth.RefreshHandler(db))

		protected := authGroup.Group("")
		protected.Use(middleware.ValidateToken(db))
		{
			protected.POST("/logout/", auth.LogoutHandler(db))
			protected.GET("/me/", userControllers.GetProfile(db))
			protected.GET("/users/", userControllers.GetAllUsers(db))
		}
	}
}
