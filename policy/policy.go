// Package policy is the single authorization decision point. Every guarded
// operation asks Allow with the caller, the action, and the owner of the
// resource being touched, instead of comparing role strings inline.
package policy

import "github.com/shopsphere/ecommerce-api/models"

type Action string

const (
	ActionCreateOrder   Action = "order:create"
	ActionUpdateOrder   Action = "order:update"
	ActionDeleteOrder   Action = "order:delete"
	ActionCreatePayment Action = "payment:create"
	ActionViewPayment   Action = "payment:view"
	ActionManageCart    Action = "cart:manage"
	ActionCreateProduct Action = "product:create"
	ActionModifyProduct Action = "product:modify"
	ActionListUsers     Action = "user:list"
)

// Allow reports whether user may perform action against a resource owned by
// ownerID. Pass ownerID 0 for actions with no owned resource.
func Allow(user models.User, action Action, ownerID uint) bool {
	switch action {
	case ActionCreateOrder, ActionCreatePayment, ActionManageCart:
		return user.Role == models.RoleCustomer
	case ActionUpdateOrder, ActionDeleteOrder, ActionViewPayment:
		return user.Role == models.RoleCustomer && user.ID == ownerID
	case ActionCreateProduct:
		return user.Role == models.RoleSeller
	case ActionModifyProduct:
		return user.Role == models.RoleSeller && user.ID == ownerID
	case ActionListUsers:
		return user.Role == models.RoleAdmin
	}
	return false
}
