package authz

import (
	"errors"
	"testing"

	"shop-api/internal/domain"
)

func TestPolicyDeniesNilActor(t *testing.T) {
	p := NewPolicy()
	if err := p.Authorize(nil, ActionManageProducts, nil); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestPolicyAdminOnlyActions(t *testing.T) {
	p := NewPolicy()
	admin := &domain.User{ID: 1, IsAdmin: true}
	member := &domain.User{ID: 2}

	for _, action := range []string{ActionManageProducts, ActionViewDashboard} {
		if err := p.Authorize(admin, action, nil); err != nil {
			t.Fatalf("admin denied %s: %v", action, err)
		}
		if err := p.Authorize(member, action, nil); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("member allowed %s", action)
		}
	}
}

func TestPolicyUnknownActionDenied(t *testing.T) {
	p := NewPolicy()
	admin := &domain.User{ID: 1, IsAdmin: true}
	if err := p.Authorize(admin, "orders:erase", nil); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for unknown action, got %v", err)
	}
}
