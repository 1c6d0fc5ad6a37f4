package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/YOBOUEARNAUD/e-commerce/internal/model"

	"github.com/redis/go-redis/v9"
)

// CartStore holds the serialized cart, one key per user. Every cart mutation
// is written through before the call returns, so a restart recovers the exact
// prior state.
type CartStore interface {
	Get(ctx context.Context, userID string) (*model.Cart, error)
	Put(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, userID string) error
}

type redisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) CartStore {
	return &redisCartStore{client: client}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Get returns the stored cart, or an empty cart when none exists.
func (s *redisCartStore) Get(ctx context.Context, userID string) (*model.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &model.Cart{UserID: userID, Items: []model.CartLine{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return decodeCart(userID, data), nil
}

// decodeCart parses a stored payload. A payload that no longer parses is
// logged and replaced by an empty cart instead of failing the session.
func decodeCart(userID string, data []byte) *model.Cart {
	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		log.Printf("cart store: discarding unparseable cart for user %s: %v", userID, err)
		return &model.Cart{UserID: userID, Items: []model.CartLine{}}
	}
	if cart.Items == nil {
		cart.Items = []model.CartLine{}
	}
	return &cart
}

// Put writes the full cart state with no TTL; the cart is the durable record,
// not a cache in front of one.
func (s *redisCartStore) Put(ctx context.Context, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *redisCartStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
