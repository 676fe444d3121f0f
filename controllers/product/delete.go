package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/policy"
	"github.com/shopsphere/ecommerce-api/utils"
)

// GET /products/delete/:id/
func GetProductForDelete(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Category").Preload("Images").
			First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Product not found")
			return
		}
		utils.Success(c, http.StatusOK, "Product retrieved successfully", product)
	}
}

// DELETE /products/delete/:id/
// Order items keep their price snapshot; their product reference is nulled.
// Cart lines for the product are dropped outright.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Product not found")
			return
		}

		if !policy.Allow(user, policy.ActionModifyProduct, product.CreatedByID) {
			utils.Fail(c, http.StatusForbidden, "You do not have permission to delete this product.")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.OrderItem{}).
				Where("product_id = ?", product.ID).
				Update("product_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to delete product")
			return
		}

		utils.NoContent(c)
	}
}
