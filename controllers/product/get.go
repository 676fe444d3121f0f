package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/utils"
)

// GET /products/:id/
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Category").Preload("Images").
			Where("is_active = ?", true).
			First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Product not found")
			return
		}

		utils.Success(c, http.StatusOK, "Product retrieved successfully", product)
	}
}
