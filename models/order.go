package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, still mutable by the customer
	OrderStatusCompleted OrderStatus = "completed" // payment settled
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusFailed    OrderStatus = "failed" // payment declined
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	Customer    User            `gorm:"foreignKey:CustomerID" json:"-"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_amount"`
	Status      OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderItem snapshots the unit price at order time. Price and TotalPrice
// never change afterwards, even if the catalog price does or the product is
// deleted (the product reference is then nulled, the snapshot survives).
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"index" json:"-"`
	ProductID  *uint           `json:"-"`
	Product    *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_price"`
}
