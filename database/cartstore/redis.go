package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ray-remotestate/restro-cart/cart"
	"github.com/ray-remotestate/restro-cart/models"
)

// Redis persists carts as JSON values under the typed cart key. Every
// Set goes through a WATCH transaction: the stored payload's version is
// compared against the incoming cart before the write, and a concurrent
// writer racing the transaction fails it the same way.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key cart.Key) (*models.Cart, bool, error) {
	payload, err := r.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cart %s: %w", key, err)
	}

	var c models.Cart
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, false, fmt.Errorf("decoding cart %s: %w", key, err)
	}
	return &c, true, nil
}

func (r *Redis) Set(ctx context.Context, key cart.Key, c *models.Cart, ttl time.Duration) error {
	k := key.String()

	txf := func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, k).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			// absent or expired: the write recreates the cart
		case err != nil:
			return err
		default:
			var current models.Cart
			if err := json.Unmarshal(stored, &current); err != nil {
				return fmt.Errorf("decoding cart %s: %w", key, err)
			}
			if current.Version != c.Version-1 {
				return cart.ErrConflict
			}
		}

		payload, err := json.Marshal(c)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, ttl)
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, k)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return cart.ErrConflict
	case errors.Is(err, cart.ErrConflict):
		return err
	default:
		return fmt.Errorf("writing cart %s: %w", key, err)
	}
}

func (r *Redis) Delete(ctx context.Context, key cart.Key) error {
	if err := r.client.Del(ctx, key.String()).Err(); err != nil {
		return fmt.Errorf("deleting cart %s: %w", key, err)
	}
	return nil
}
