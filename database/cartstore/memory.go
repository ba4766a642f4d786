package cartstore

import (
	"context"
	"sync"
	"time"

	"github.com/ray-remotestate/restro-cart/cart"
	"github.com/ray-remotestate/restro-cart/models"
)

type entry struct {
	cart      models.Cart
	expiresAt time.Time
}

// Memory keeps carts in a mutex-guarded map with real expiry
// timestamps. It backs tests and local runs without Redis; behaviour
// under the store contract matches the Redis adapter.
type Memory struct {
	mu    sync.Mutex
	carts map[cart.Key]entry
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		carts: make(map[cart.Key]entry),
		now:   time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key cart.Key) (*models.Cart, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.carts[key]
	if !ok {
		return nil, false, nil
	}
	if m.now().After(e.expiresAt) {
		delete(m.carts, key)
		return nil, false, nil
	}
	c := cloneCart(e.cart)
	return &c, true, nil
}

func (m *Memory) Set(_ context.Context, key cart.Key, c *models.Cart, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.carts[key]; ok && m.now().Before(e.expiresAt) {
		if e.cart.Version != c.Version-1 {
			return cart.ErrConflict
		}
	}
	m.carts[key] = entry{cart: cloneCart(*c), expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *Memory) Delete(_ context.Context, key cart.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, key)
	return nil
}

// cloneCart copies the line and modifier slices so callers never share
// backing arrays with the stored value.
func cloneCart(c models.Cart) models.Cart {
	items := make([]models.CartLine, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		mods := make([]models.Modifier, len(items[i].Modifiers))
		copy(mods, items[i].Modifiers)
		items[i].Modifiers = mods
	}
	c.Items = items
	return c
}
