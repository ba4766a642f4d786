package dbhelper

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ray-remotestate/restro-cart/cart"
	"github.com/ray-remotestate/restro-cart/database"
)

// MenuLookup answers strict-mode availability checks from the
// menu_items table. It satisfies cart.MenuValidator.
type MenuLookup struct{}

func (MenuLookup) Lookup(ctx context.Context, tenantID, menuItemID uuid.UUID) (cart.MenuItemStatus, error) {
	var isAvailable bool
	err := database.Restro.QueryRowContext(ctx, `
		SELECT is_available FROM menu_items
		WHERE id = $1 AND restaurant_id = $2`, menuItemID, tenantID).
		Scan(&isAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return cart.MenuItemStatus{Exists: false}, nil
	}
	if err != nil {
		return cart.MenuItemStatus{}, err
	}

	return cart.MenuItemStatus{Exists: true, Active: isAvailable}, nil
}
