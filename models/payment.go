package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string
type PaymentMethod string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"

	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
)

type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderID       uint            `gorm:"uniqueIndex;not null" json:"order_id"` // at most one payment per order
	Order         Order           `gorm:"foreignKey:OrderID" json:"-"`
	PaymentID     string          `gorm:"size:100" json:"payment_id"` // reference from the gateway
	PaymentMethod PaymentMethod   `gorm:"type:VARCHAR(50)" json:"payment_method"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status        PaymentStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
