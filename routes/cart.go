package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shopsphere/ecommerce-api/controllers/cart"
	"github.com/shopsphere/ecommerce-api/middleware"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken(db))
	{
		cart.POST("/create/", cartControllers.CreateCartHandler(db))
		cart.GET("/cart_items/", cartControllers.GetCartHandler(db))
		cart.POST("/cart_items/add/", cartControllers.AddCartItemHandler(db))
		cart.GET("/cart_items/:id/", cartControllers.GetCartItemHandler(db))
		cart.PUT("/cart_items/:id/", cartControllers.UpdateCartItemHandler(db))
		cart.GET("/cart_items/:id/delete/", cartControllers.GetCartItemHandler(db))
		cart.DELETE("/cart_items/:id/delete/", cartControllers.DeleteCartItemHandler(db))
	}
}
