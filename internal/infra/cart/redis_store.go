// Package cart implements the session-scoped cart store on Redis.
// Carts are stored as one JSON value per user with a sliding TTL, so an
// untouched cart expires on its own.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(cfg *config.Config) (repository.CartStore, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, errors.New("redis address must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return &redisStore{client: client, ttl: cfg.Cart.TTL}, nil
}

// Get loads the cart for a user. Returns an empty cart when none is stored.
func (s *redisStore) Get(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Cart{}, nil
	}
	if err != nil {
		return entity.Cart{}, errors.Wrap(err, "failed to load cart")
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return entity.Cart{}, errors.Wrap(err, "failed to decode cart")
	}

	return cart, nil
}

// Save stores the cart snapshot for a user, refreshing its TTL.
func (s *redisStore) Save(ctx context.Context, userID uuid.UUID, cart entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := s.client.Set(ctx, cartKey(userID), raw, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// Delete drops the stored cart, if any.
func (s *redisStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

func cartKey(userID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", userID)
}
