package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/shopsphere/ecommerce-api/controllers/order"
	"github.com/shopsphere/ecommerce-api/gateway"
	"github.com/shopsphere/ecommerce-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, gw gateway.Gateway) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(db))
	{
		// Create a new order
		orders.POST("/create/", orderControllers.CreateOrderHandler(db))

		// Orders visible to the caller (own for customers, by-product for sellers)
		orders.GET("/list/", orderControllers.ListOrdersHandler(db))

		// Fetch/update a pending order
		orders.GET("/orders/:id/update/", orderControllers.GetOrderHandler(db))
		orders.PUT("/orders/:id/update/", orderControllers.UpdateOrderHandler(db))

		// Fetch/delete a pending order
		orders.GET("/orders/:id/delete/", orderControllers.GetOrderHandler(db))
		orders.DELETE("/orders/:id/delete/", orderControllers.DeleteOrderHandler(db))

		// Settle payment
		orders.POST("/payments/create/", orderControllers.CreatePaymentHandler(db, gw))

		// Fetch payment
		orders.GET("/payments/:id/", orderControllers.GetPaymentHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderFeedHandler)
	}
}
