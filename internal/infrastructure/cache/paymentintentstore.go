package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bookstore/internal/application/checkout/usecases"
)

const intentKeyPrefix = "payment:intent:"

// RedisPaymentIntentStore keeps pending payment intents in Redis, keyed by
// transaction reference. Redis expiry mirrors the gateway's payment window,
// so stale intents vanish without a sweeper.
type RedisPaymentIntentStore struct {
	client *redis.Client
}

func NewRedisPaymentIntentStore(client *redis.Client) *RedisPaymentIntentStore {
	return &RedisPaymentIntentStore{client: client}
}

func (s *RedisPaymentIntentStore) Save(ctx context.Context, intent *usecases.PaymentIntent, ttl time.Duration) error {
	if intent == nil || intent.TxnRef == "" {
		return errors.New("intent with transaction reference is required")
	}
	data, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("failed to marshal payment intent: %w", err)
	}
	if err := s.client.Set(ctx, s.buildKey(intent.TxnRef), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store payment intent in redis: %w", err)
	}
	return nil
}

func (s *RedisPaymentIntentStore) Get(ctx context.Context, txnRef string) (*usecases.PaymentIntent, error) {
	if txnRef == "" {
		return nil, errors.New("transaction reference is required")
	}
	data, err := s.client.Get(ctx, s.buildKey(txnRef)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment intent from redis: %w", err)
	}
	var intent usecases.PaymentIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment intent: %w", err)
	}
	return &intent, nil
}

func (s *RedisPaymentIntentStore) Delete(ctx context.Context, txnRef string) error {
	if txnRef == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.buildKey(txnRef)).Err(); err != nil {
		return fmt.Errorf("failed to delete payment intent from redis: %w", err)
	}
	return nil
}

func (s *RedisPaymentIntentStore) buildKey(txnRef string) string {
	return intentKeyPrefix + txnRef
}
