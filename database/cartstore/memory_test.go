package cartstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/restro-cart/cart"
	"github.com/ray-remotestate/restro-cart/models"
)

func testKey() cart.Key {
	return cart.Key{TenantID: uuid.New(), TableID: uuid.New()}
}

func testCart(version int64) *models.Cart {
	return &models.Cart{
		Items: []models.CartLine{{
			ItemKey:    "abc",
			MenuItemID: uuid.New(),
			Name:       "Latte",
			Quantity:   1,
			UnitPrice:  10,
			Modifiers:  []models.Modifier{{GroupID: uuid.New(), OptionID: uuid.New(), Name: "Large", PriceDelta: 2}},
		}},
		TotalPrice: 12,
		TotalItems: 1,
		Version:    version,
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	key := testKey()

	_, ok, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok)

	want := testCart(1)
	require.NoError(t, m.Set(context.Background(), key, want, time.Minute))

	got, ok, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMemory_GetReturnsACopy(t *testing.T) {
	m := NewMemory()
	key := testKey()
	require.NoError(t, m.Set(context.Background(), key, testCart(1), time.Minute))

	first, _, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	first.Items[0].Quantity = 99
	first.Items[0].Modifiers[0].PriceDelta = 99

	second, _, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Items[0].Quantity)
	assert.Equal(t, 2.0, second.Items[0].Modifiers[0].PriceDelta)
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	key := testKey()

	now := time.Now()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(context.Background(), key, testCart(1), time.Minute))

	now = now.Add(61 * time.Second)
	_, ok, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok, "expired cart must read as absent")
}

func TestMemory_SlidingTTLRefreshesOnWrite(t *testing.T) {
	m := NewMemory()
	key := testKey()

	now := time.Now()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(context.Background(), key, testCart(1), time.Minute))

	// a write 50s in resets the window; 50s after that the cart is
	// still inside it
	now = now.Add(50 * time.Second)
	require.NoError(t, m.Set(context.Background(), key, testCart(2), time.Minute))

	now = now.Add(50 * time.Second)
	_, ok, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_VersionConflict(t *testing.T) {
	m := NewMemory()
	key := testKey()

	require.NoError(t, m.Set(context.Background(), key, testCart(1), time.Minute))
	require.NoError(t, m.Set(context.Background(), key, testCart(2), time.Minute))

	// a writer that read version 1 loses to the version-2 write
	err := m.Set(context.Background(), key, testCart(2), time.Minute)
	assert.ErrorIs(t, err, cart.ErrConflict)

	got, ok, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), got.Version)
}

func TestMemory_WriteAfterExpiryRecreates(t *testing.T) {
	m := NewMemory()
	key := testKey()

	now := time.Now()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(context.Background(), key, testCart(3), time.Minute))

	// key expires, then a fresh first write (version 1) lands fine
	now = now.Add(2 * time.Minute)
	require.NoError(t, m.Set(context.Background(), key, testCart(1), time.Minute))

	got, ok, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), got.Version)
}

func TestMemory_Delete(t *testing.T) {
	m := NewMemory()
	key := testKey()

	require.NoError(t, m.Set(context.Background(), key, testCart(1), time.Minute))
	require.NoError(t, m.Delete(context.Background(), key))
	require.NoError(t, m.Delete(context.Background(), key)) // idempotent

	_, ok, err := m.Get(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok)
}
