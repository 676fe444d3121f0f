// Package gateway abstracts the external payment processor. Settlement only
// consumes the Result variant, so swapping in a real processor integration
// does not touch the order workflow.
package gateway

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopsphere/ecommerce-api/models"
)

// Result is the processor's verdict for one charge attempt.
type Result struct {
	Reference string // processor-side payment reference
	Status    models.PaymentStatus
}

type Gateway interface {
	Charge(orderID uint, amount decimal.Decimal, method models.PaymentMethod) (Result, error)
}

// AlwaysApprove approves every charge. This is the wired default: no real
// gateway round-trip is modeled, every settlement succeeds.
type AlwaysApprove struct{}

func (AlwaysApprove) Charge(orderID uint, amount decimal.Decimal, method models.PaymentMethod) (Result, error) {
	return Result{Reference: uuid.NewString(), Status: models.PaymentStatusSuccess}, nil
}

// Decline refuses every charge. Used to exercise the failure path.
type Decline struct{}

func (Decline) Charge(orderID uint, amount decimal.Decimal, method models.PaymentMethod) (Result, error) {
	return Result{Reference: uuid.NewString(), Status: models.PaymentStatusFailed}, nil
}
