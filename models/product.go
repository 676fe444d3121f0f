package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity    int             `json:"quantity"` // units in stock
	CategoryID  uint            `json:"-"`
	Category    Category        `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedByID uint            `json:"created_by"`
	CreatedBy   User            `gorm:"foreignKey:CreatedByID" json:"-"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	// No column default: Create must be able to persist false, and the
	// product controller sets the flag explicitly on insert.
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProductID  uint   `gorm:"index" json:"-"`
	Image      string `gorm:"not null" json:"image"`
	AltText    string `json:"alt_text"`
	IsFeatured bool   `json:"is_featured"`
}
