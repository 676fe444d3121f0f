package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/gateway"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gw gateway.Gateway) {
	SetupAuthRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db, gw)
}
