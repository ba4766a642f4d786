package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ray-remotestate/restro-cart/models"
)

// Key identifies one table's cart. The wire encoding lives here and
// nowhere else, so adapters never concatenate identifiers themselves.
type Key struct {
	TenantID uuid.UUID
	TableID  uuid.UUID
}

func (k Key) String() string {
	return fmt.Sprintf("cart:%s:%s", k.TenantID, k.TableID)
}

// Store is the TTL key/value contract the service needs. Get reports a
// missing or expired cart as ok=false with a nil error; that is never a
// failure. Set refreshes the sliding TTL on every write and enforces
// optimistic versioning: it fails with ErrConflict when the stored
// cart's Version is not cart.Version-1. A missing key always accepts
// the write, so a cart expiring mid-mutation is simply recreated.
type Store interface {
	Get(ctx context.Context, key Key) (*models.Cart, bool, error)
	Set(ctx context.Context, key Key, cart *models.Cart, ttl time.Duration) error
	Delete(ctx context.Context, key Key) error
}
