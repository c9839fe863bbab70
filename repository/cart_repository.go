package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vitrine/cart"

	"github.com/redis/go-redis/v9"
)

// CartStore persists guest carts between visits, keyed by the opaque cart
// token issued to the browser.
type CartStore interface {
	GetCart(ctx context.Context, token string) (*cart.Cart, error)
	SaveCart(ctx context.Context, token string, c *cart.Cart) error
	DeleteCart(ctx context.Context, token string) error
}

// RedisCartStore stores each cart as a JSON blob with a TTL.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisCartStore) getKey(token string) string {
	return fmt.Sprintf("cart:token:%s", token)
}

// GetCart loads a cart. A missing key or a corrupted payload yields a fresh
// empty cart rather than an error, so a bad blob can never break the page.
func (r *RedisCartStore) GetCart(ctx context.Context, token string) (*cart.Cart, error) {
	data, err := r.client.Get(ctx, r.getKey(token)).Result()
	if err == redis.Nil {
		return cart.New(), nil
	}
	if err != nil {
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return cart.New(), nil
	}
	if c.Lines == nil {
		c.Lines = []cart.Line{}
	}
	return &c, nil
}

func (r *RedisCartStore) SaveCart(ctx context.Context, token string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.getKey(token), data, r.ttl).Err()
}

func (r *RedisCartStore) DeleteCart(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.getKey(token)).Err()
}
