package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CustomerID uint       `gorm:"uniqueIndex;not null" json:"customer_id"`       // Enforces ONE cart per customer
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Cascade delete items if cart is deleted
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem pairs a cart with a product. The (cart, product) pair is unique;
// re-adding a product bumps the quantity instead.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"uniqueIndex:idx_cart_product" json:"-"`
	ProductID uint    `gorm:"uniqueIndex:idx_cart_product" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}

// TotalPrice is the live catalog price times quantity. Cart lines are NOT
// price-snapshotted; only order items are.
func (ci CartItem) TotalPrice() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
