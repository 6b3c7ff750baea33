package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/featherworks/aviary/internal/platform/constants"
)

// RedisStore persists carts as JSON blobs with a sliding TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (store *RedisStore) key(sessionID string) string {
	return constants.RedisPrefixCartSession + sessionID
}

func (store *RedisStore) LoadCart(context context.Context, sessionID string) (*Cart, error) {
	raw, err := store.client.Get(context, store.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart: load session %q: %w", sessionID, err)
	}

	c := &Cart{}
	if err := json.Unmarshal(raw, c); err != nil {
		// Corrupt blob: discard rather than fail the request.
		return &Cart{}, nil
	}
	return c, nil
}

func (store *RedisStore) SaveCart(context context.Context, sessionID string, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cart: encode session %q: %w", sessionID, err)
	}

	if err := store.client.Set(context, store.key(sessionID), raw, constants.CartSessionTTL).Err(); err != nil {
		return fmt.Errorf("cart: save session %q: %w", sessionID, err)
	}
	return nil
}

func (store *RedisStore) DeleteCart(context context.Context, sessionID string) error {
	if err := store.client.Del(context, store.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart: delete session %q: %w", sessionID, err)
	}
	return nil
}
