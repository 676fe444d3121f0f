package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/gateway"
	"github.com/shopsphere/ecommerce-api/middleware"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/policy"
	"github.com/shopsphere/ecommerce-api/utils"
)

type CreatePaymentRequest struct {
	OrderID       uint            `json:"order_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
}

var (
	errOrderMissing     = errors.New("Selected order does not exist.")
	errDuplicatePayment = errors.New("Payment already exists for this order.")
)

func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch models.PaymentMethod(method) {
	case models.PaymentMethodCard:
		return models.PaymentMethodCard, nil
	case models.PaymentMethodUPI:
		return models.PaymentMethodUPI, nil
	case models.PaymentMethodNetbanking:
		return models.PaymentMethodNetbanking, nil
	default:
		return "", errors.New("Select a valid payment method.")
	}
}

// settlePayment records exactly one payment for the order and advances the
// order status according to the gateway result. The charge runs before the
// transaction opens so no transaction is held across the processor call;
// the unique index on payments.order_id decides concurrent settlements —
// the losing insert fails and the transaction rolls back.
func settlePayment(db *gorm.DB, gw gateway.Gateway, req CreatePaymentRequest, method models.PaymentMethod) (models.Payment, error) {
	var order models.Order
	if err := db.First(&order, "id = ?", req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, errOrderMissing
		}
		return models.Payment{}, err
	}

	var existing models.Payment
	if err := db.Where("order_id = ?", order.ID).First(&existing).Error; err == nil {
		return models.Payment{}, errDuplicatePayment
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Payment{}, err
	}

	result, err := gw.Charge(order.ID, req.Amount, method)
	if err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		OrderID:       order.ID,
		PaymentID:     result.Reference,
		PaymentMethod: method,
		Amount:        req.Amount,
		Status:        result.Status,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return errDuplicatePayment
		}

		switch result.Status {
		case models.PaymentStatusSuccess:
			order.Status = models.OrderStatusCompleted
		case models.PaymentStatusFailed:
			order.Status = models.OrderStatusFailed
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", order.Status).Error
	})
	if err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// POST /orders/payments/create/
func CreatePaymentHandler(db *gorm.DB, gw gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if !policy.Allow(user, policy.ActionCreatePayment, 0) {
			utils.Fail(c, http.StatusForbidden, "Only customers can make payments.")
			return
		}

		var req CreatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		if !req.Amount.IsPositive() {
			utils.Fail(c, http.StatusBadRequest, "Enter a valid amount.")
			return
		}
		method, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		payment, err := settlePayment(db, gw, req, method)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		if err := db.Preload("Order.Customer").Preload("Order.Items.Product").
			First(&payment, payment.ID).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Something went wrong")
			return
		}

		broadcastOrderEvent("order.settled", payment.Order)
		utils.Success(c, http.StatusCreated, "Payment processed successfully", paymentData(payment))
	}
}

// GET /orders/payments/:id/
func GetPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var payment models.Payment
		if err := db.Preload("Order.Customer").Preload("Order.Items.Product").
			First(&payment, "id = ?", c.Param("id")).Error; err != nil {
			utils.Fail(c, http.StatusBadRequest, "Payment not found")
			return
		}

		if !policy.Allow(user, policy.ActionViewPayment, payment.Order.CustomerID) {
			utils.Fail(c, http.StatusForbidden, "You do not have permission to view this payment.")
			return
		}

		utils.Success(c, http.StatusOK, "Payment retrieved successfully", paymentData(payment))
	}
}
