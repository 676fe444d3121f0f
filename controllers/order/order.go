package orderControllers

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

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	Items []OrderItemInput `json:"items"`
}

// Partial update: only provided fields are persisted.
type UpdateOrderRequest struct {
	Status      *string          `json:"status"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
}

// -------- Errors surfaced to the caller --------

var (
	errEmptyItems     = errors.New("Order items are required.")
	errProductMissing = errors.New("Selected product does not exist.")
	errBadQuantity    = errors.New("Quantity must be at least 1.")
)

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusCompleted:
		return models.OrderStatusCompleted, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	case models.OrderStatusFailed:
		return models.OrderStatusFailed, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// -------- Core Logic --------

// createOrder persists an order with its items as one unit. Every item's
// unit price is snapshotted from the catalog at this instant; any invalid
// item rolls the whole write back.
func createOrder(db *gorm.DB, customer models.User, items []OrderItemInput) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, input := range items {
			if input.Quantity < 1 {
				return errBadQuantity
			}

			var product models.Product
			if err := tx.First(&product, "id = ?", input.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errProductMissing
				}
				return err
			}

			price := product.Price
			lineTotal := price.Mul(decimal.NewFromInt(int64(input.Quantity)))
			productID := product.ID
			orderItems = append(orderItems, models.OrderItem{
				ProductID:  &productID,
				Quantity:   input.Quantity,
				Price:      price,
				TotalPrice: lineTotal,
			})
			total = total.Add(lineTotal)
		}

		order = models.Order{
			CustomerID:  customer.ID,
			Items:       orderItems,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
		}
		return tx.Create(&order).Error
	})
	return order, err
}

func loadOrder(db *gorm.DB, id string) (models.Order, error) {
	var order models.Order
	err := db.Preload("Customer").Preload("Items.Product").First(&order, "id = ?", id).Error
	return order, err
}

// -------- Handlers --------

// POST /orders/create/
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if !policy.Allow(user, policy.ActionCreateOrder, 0) {
			utils.Fail(c, http.StatusForbidden, "Only customers can place orders.")
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		if len(req.Items) == 0 {
			utils.Fail(c, http.StatusBadRequest, errEmptyItems.Error())
			return
		}

		order, err := createOrder(db, user, req.Items)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		// Reload with product detail for the response payload.
		if err := db.Preload("Customer").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		broadcastOrderEvent("order.created", order)
		utils.Success(c, http.StatusCreated, "Order created successfully", orderData(order))
	}
}

// GET /orders/list/
// Customers see their own orders. Sellers/admins see orders containing at
// least one item whose product they created, deduplicated.
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var orders []models.Order
		query := db.Preload("Customer").Preload("Items.Product")
		var err error
		if user.Role == models.RoleCustomer {
			err = query.
				Where("customer_id = ?", user.ID).
				Order("created_at DESC").
				Find(&orders).Error
		} else {
			err = query.
				Joins("JOIN order_items ON order_items.order_id = orders.id").
				Joins("JOIN products ON products.id = order_items.product_id").
				Where("products.created_by_id = ?", user.ID).
				Distinct("orders.*").
				Order("orders.created_at DESC").
				Find(&orders).Error
		}
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		data := make([]gin.H, 0, len(orders))
		for _, order := range orders {
			data = append(data, orderData(order))
		}
		utils.Success(c, http.StatusOK, "Orders retrieved successfully", data)
	}
}

// GET /orders/orders/:id/update/ and /orders/orders/:id/delete/
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := loadOrder(db, c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Order not found")
			return
		}
		utils.Success(c, http.StatusOK, "Order retrieved successfully", orderData(order))
	}
}

// PUT /orders/orders/:id/update/
// Narrow administrative override for the owning customer while the order is
// still pending. Items are not revisable through this path.
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		order, err := loadOrder(db, c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Order not found")
			return
		}

		if !policy.Allow(user, policy.ActionUpdateOrder, order.CustomerID) {
			utils.Fail(c, http.StatusForbidden, "You do not have permission to update this order.")
			return
		}
		if order.Status != models.OrderStatusPending {
			utils.Fail(c, http.StatusBadRequest, "Cannot update order once processed.")
			return
		}

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		if req.Status != nil {
			status, err := mapOrderStatus(*req.Status)
			if err != nil {
				utils.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			order.Status = status
		}
		if req.TotalAmount != nil {
			order.TotalAmount = *req.TotalAmount
		}

		if err := db.Save(&order).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to update order")
			return
		}

		utils.Success(c, http.StatusOK, "Order updated successfully", orderData(order))
	}
}

// DELETE /orders/orders/:id/delete/
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		order, err := loadOrder(db, c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Order not found")
			return
		}

		if !policy.Allow(user, policy.ActionDeleteOrder, order.CustomerID) {
			utils.Fail(c, http.StatusForbidden, "You do not have permission to delete this order.")
			return
		}
		if order.Status != models.OrderStatusPending {
			utils.Fail(c, http.StatusBadRequest, "Cannot delete order once processed.")
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Failed to delete order")
			return
		}

		utils.NoContent(c)
	}
}
