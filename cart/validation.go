package cart

import (
	"context"

	"github.com/google/uuid"
)

type MenuItemStatus struct {
	Exists bool
	Active bool
}

// MenuValidator answers whether a menu item may be added to a cart.
// Only consulted in strict mode; the call is synchronous and runs under
// the service's lookup timeout.
type MenuValidator interface {
	Lookup(ctx context.Context, tenantID, menuItemID uuid.UUID) (MenuItemStatus, error)
}
