// Package authz holds the capability checks invoked before protected
// operations. Handlers call Authorize and short-circuit with 403 on deny.
package authz

import "shop-api/internal/domain"

// Actions checked by the API.
const (
	ActionManageProducts = "products:manage"
	ActionViewDashboard  = "dashboard:view"
)

// Authorizer decides whether an actor may perform an action on a resource.
// A nil error means allow; domain.ErrForbidden means deny.
type Authorizer interface {
	Authorize(actor *domain.User, action string, resource any) error
}

// Policy is the default rule set: product management and the dashboard are
// admin-only, everything else is decided at the handler level.
type Policy struct{}

func NewPolicy() Policy {
	return Policy{}
}

func (Policy) Authorize(actor *domain.User, action string, _ any) error {
	if actor == nil {
		return domain.ErrForbidden
	}
	switch action {
	case ActionManageProducts, ActionViewDashboard:
		if !actor.IsAdmin {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}
