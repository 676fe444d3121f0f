package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/policy"
	"github.com/shopsphere/ecommerce-api/utils"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity"`
}

func cartItemData(item models.CartItem) gin.H {
	return gin.H{
		"id": item.ID,
		"product": gin.H{
			"id":          item.Product.ID,
			"name":        item.Product.Name,
			"price":       item.Product.Price,
			"description": item.Product.Description,
			"quantity":    item.Product.Quantity,
		},
		"quantity":    item.Quantity,
		"total_price": item.TotalPrice(),
	}
}

func cartData(cart models.Cart) gin.H {
	items := make([]gin.H, 0, len(cart.Items))
	total := decimal.Zero
	for _, item := range cart.Items {
		items = append(items, cartItemData(item))
		total = total.Add(item.TotalPrice())
	}
	return gin.H{
		"id":           cart.ID,
		"customer_id":  cart.CustomerID,
		"items":        items,
		"total":        total,
		"final_amount": total,
		"created_at":   cart.CreatedAt,
		"updated_at":   cart.UpdatedAt,
	}
}

// loadCartItem fetches a cart item scoped to the customer's own cart.
func loadCartItem(db *gorm.DB, customerID uint, id string) (models.CartItem, error) {
	var item models.CartItem
	err := db.Preload("Product").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.customer_id = ?", id, customerID).
		First(&item).Error
	return item, err
}

// POST /cart/create/
func CreateCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if !policy.Allow(user, policy.ActionManageCart, 0) {
			utils.Fail(c, http.StatusForbidden, "Only customers can create a cart.")
			return
		}

		var cart models.Cart
		result := db.Where(models.Cart{CustomerID: user.ID}).FirstOrCreate(&cart)
		if result.Error != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		db.Preload("Items.Product").First(&cart, cart.ID)
		if result.RowsAffected > 0 {
			utils.Success(c, http.StatusCreated, "Cart created successfully", cartData(cart))
			return
		}
		utils.Success(c, http.StatusOK, "Cart already exists", cartData(cart))
	}
}

// GET /cart/cart_items/
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var cart models.Cart
		if err := db.Preload("Items.Product").
			Where("customer_id = ?", user.ID).First(&cart).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Cart not found")
			return
		}

		utils.Success(c, http.StatusOK, "Cart retrieved successfully", cartData(cart))
	}
}

// POST /cart/cart_items/add/
// Each product appears once per cart; re-adding bumps the quantity.
func AddCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if !policy.Allow(user, policy.ActionManageCart, 0) {
			utils.Fail(c, http.StatusForbidden, "Only customers can add items to the cart.")
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Product and quantity are required.")
			return
		}
		if input.Quantity < 1 {
			utils.Fail(c, http.StatusBadRequest, "Quantity must be at least 1.")
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "The selected product does not exist.")
			return
		}

		var cart models.Cart
		if err := db.Where(models.Cart{CustomerID: user.ID}).FirstOrCreate(&cart).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: input.Quantity}
			if err := db.Create(&item).Error; err != nil {
				utils.Fail(c, http.StatusBadRequest, "Failed to add item to cart")
				return
			}
		case err == nil:
			item.Quantity += input.Quantity
			if err := db.Save(&item).Error; err != nil {
				utils.Fail(c, http.StatusBadRequest, "Failed to add item to cart")
				return
			}
		default:
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		item.Product = product
		utils.Success(c, http.StatusCreated, "Item added to cart successfully", cartItemData(item))
	}
}

// GET /cart/cart_items/:id/ and /cart/cart_items/:id/delete/
func GetCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		item, err := loadCartItem(db, user.ID, c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Cart item not found")
			return
		}

		utils.Success(c, http.StatusOK, "Cart item retrieved successfully", cartItemData(item))
	}
}

// PUT /cart/cart_items/:id/
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		item, err := loadCartItem(db, user.ID, c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Cart item not found")
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		if input.Quantity != nil {
			if *input.Quantity < 1 {
				utils.Fail(c, http.StatusBadRequest, "Quantity must be at least 1.")
				return
			}
			item.Quantity = *input.Quantity
			if err := db.Save(&item).Error; err != nil {
				utils.Fail(c, http.StatusBadRequest, "Failed to update cart item")
				return
			}
		}

		utils.Success(c, http.StatusOK, "Cart item updated successfully", cartItemData(item))
	}
}

// DELETE /cart/cart_items/:id/delete/
func DeleteCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		item, err := loadCartItem(db, user.ID, c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Cart item not found")
			return
		}

		if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to delete cart item")
			return
		}

		utils.NoContent(c)
	}
}
