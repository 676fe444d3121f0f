package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/policy"
	"github.com/shopsphere/ecommerce-api/utils"
)

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    uint            `json:"category" binding:"required"`
}

// POST /products/create/
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if !policy.Allow(user, policy.ActionCreateProduct, 0) {
			utils.Fail(c, http.StatusForbidden, "Only sellers can add products.")
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		if !input.Price.IsPositive() {
			utils.Fail(c, http.StatusBadRequest, "Enter a valid price.")
			return
		}
		if input.Quantity < 0 {
			utils.Fail(c, http.StatusBadRequest, "Enter a valid quantity.")
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.Category).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Category not found")
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Quantity:    input.Quantity,
			CategoryID:  category.ID,
			Category:    category,
			CreatedByID: user.ID,
			IsActive:    true,
		}
		if err := db.Create(&product).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to create product")
			return
		}

		utils.Success(c, http.StatusCreated, "Product created successfully", product)
	}
}
