package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/restro-cart/models"
)

const (
	defaultTTL           = 30 * time.Minute
	defaultLookupTimeout = 2 * time.Second
)

type Config struct {
	// TTL is the sliding inactivity window; every successful mutation
	// refreshes it.
	TTL time.Duration
	// Strict makes AddLine check menu availability before accepting.
	Strict bool
	// LookupTimeout bounds the strict-mode validator call.
	LookupTimeout time.Duration
}

// Service orchestrates all cart operations. Every mutation is a
// read-modify-recompute-write cycle against the store; validation
// happens before the read so a rejected operation never touches the
// persisted cart. The service does not retry store or validator
// failures, that is the caller's call.
type Service struct {
	store     Store
	validator MenuValidator
	cfg       Config
}

func NewService(store Store, validator MenuValidator, cfg Config) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = defaultLookupTimeout
	}
	if cfg.Strict && validator == nil {
		logrus.Panic("strict validation enabled without a menu validator")
	}
	return &Service{store: store, validator: validator, cfg: cfg}
}

type AddLineInput struct {
	MenuItemID uuid.UUID
	Name       string
	Quantity   int
	UnitPrice  float64
	Modifiers  []models.Modifier
	Notes      string
}

// GetCart is read-only and never fails on a missing cart; first visits
// just see an empty one.
func (s *Service) GetCart(ctx context.Context, key Key) (*models.Cart, error) {
	c, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return emptyCart(), nil
	}
	return c, nil
}

// AddLine appends a line or merges into the line with the same derived
// item key. On a merge only the quantity grows; the stored name, price
// and modifiers stay as first written.
func (s *Service) AddLine(ctx context.Context, key Key, in AddLineInput) (*models.Cart, error) {
	if in.Quantity < 1 {
		return nil, ErrQuantityInvalid
	}
	if in.UnitPrice < 0 {
		return nil, ErrPriceInvalid
	}
	if s.cfg.Strict {
		if err := s.checkAvailability(ctx, key.TenantID, in.MenuItemID); err != nil {
			return nil, err
		}
	}

	c, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		c = emptyCart()
	}

	mods := canonicalizeModifiers(in.Modifiers)
	itemKey := DeriveItemKey(in.MenuItemID, mods)
	if i := findLine(c, itemKey); i >= 0 {
		c.Items[i].Quantity += in.Quantity
	} else {
		c.Items = append(c.Items, models.CartLine{
			ItemKey:    itemKey,
			MenuItemID: in.MenuItemID,
			Name:       in.Name,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			Modifiers:  mods,
			Notes:      in.Notes,
		})
	}

	return s.persist(ctx, key, c)
}

// RemoveLine deletes the line with the given item key.
func (s *Service) RemoveLine(ctx context.Context, key Key, itemKey string) (*models.Cart, error) {
	c, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLineNotFound
	}

	i := findLine(c, itemKey)
	if i < 0 {
		return nil, ErrLineNotFound
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)

	return s.persist(ctx, key, c)
}

// UpdateQuantity sets the line's quantity outright, it is not additive.
func (s *Service) UpdateQuantity(ctx context.Context, key Key, itemKey string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	c, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLineNotFound
	}

	i := findLine(c, itemKey)
	if i < 0 {
		return nil, ErrLineNotFound
	}
	c.Items[i].Quantity = quantity

	return s.persist(ctx, key, c)
}

// Clear drops the cart unconditionally; clearing a cart that does not
// exist succeeds.
func (s *Service) Clear(ctx context.Context, key Key) error {
	return s.store.Delete(ctx, key)
}

func (s *Service) persist(ctx context.Context, key Key, c *models.Cart) (*models.Cart, error) {
	Recompute(c)
	c.Version++
	if err := s.store.Set(ctx, key, c, s.cfg.TTL); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) checkAvailability(ctx context.Context, tenantID, menuItemID uuid.UUID) error {
	lctx, cancel := context.WithTimeout(ctx, s.cfg.LookupTimeout)
	defer cancel()

	status, err := s.validator.Lookup(lctx, tenantID, menuItemID)
	if errors.Is(err, context.DeadlineExceeded) {
		// A catalog that cannot answer in time cannot vouch for the item.
		logrus.Printf("menu lookup timed out for item %s", menuItemID)
		return ErrItemUnavailable
	}
	if err != nil {
		return err
	}
	if !status.Exists || !status.Active {
		return ErrItemUnavailable
	}
	return nil
}

func findLine(c *models.Cart, itemKey string) int {
	for i := range c.Items {
		if c.Items[i].ItemKey == itemKey {
			return i
		}
	}
	return -1
}

func emptyCart() *models.Cart {
	return &models.Cart{Items: []models.CartLine{}}
}
