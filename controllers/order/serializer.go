package orderControllers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopsphere/ecommerce-api/models"
)

// Response shapes mirror the public API: orders nest their items, items nest
// product detail (null once the product is deleted), payments nest the order.

func productData(p *models.Product) gin.H {
	if p == nil || p.ID == 0 {
		return nil
	}
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"quantity":    p.Quantity,
	}
}

func orderItemData(item models.OrderItem) gin.H {
	return gin.H{
		"id":          item.ID,
		"product":     productData(item.Product),
		"quantity":    item.Quantity,
		"price":       item.Price,
		"total_price": item.TotalPrice,
	}
}

func orderData(order models.Order) gin.H {
	items := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemData(item))
	}
	return gin.H{
		"id":             order.ID,
		"customer_id":    order.CustomerID,
		"customer_email": order.Customer.Email,
		"total_amount":   order.TotalAmount,
		"status":         order.Status,
		"created_at":     order.CreatedAt,
		"updated_at":     order.UpdatedAt,
		"items":          items,
	}
}

func paymentData(payment models.Payment) gin.H {
	return gin.H{
		"id":             payment.ID,
		"order":          orderData(payment.Order),
		"payment_id":     payment.PaymentID,
		"payment_method": payment.PaymentMethod,
		"amount":         payment.Amount,
		"status":         payment.Status,
		"created_at":     payment.CreatedAt,
		"updated_at":     payment.UpdatedAt,
	}
}
