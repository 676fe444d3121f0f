package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	// No column default: Create must be able to persist a deactivated
	// account, and registration sets the flag explicitly.
	IsActive  bool      `json:"is_active"`
	Orders    []Order   `gorm:"foreignKey:CustomerID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// RevokedToken records refresh tokens invalidated by logout. Refresh is
// refused for any token present here.
type RevokedToken struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"uniqueIndex;size:512;not null"`
	RevokedAt time.Time
}
