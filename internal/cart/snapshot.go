package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velora-store/velora/internal/models"
)

// SnapshotStore persists the cart line items (never the coupon) under a
// single key per cart. Implementations are best-effort: the Store logs and
// carries on when they fail.
type SnapshotStore interface {
	Load(ctx context.Context, cartID string) ([]models.CartItem, error)
	Save(ctx context.Context, cartID string, items []models.CartItem) error
	Delete(ctx context.Context, cartID string) error
}

const snapshotKeyPrefix = "velora:cart:"

// RedisSnapshotStore keeps each cart as a JSON array of CartItem in one
// Redis key with a sliding TTL.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

func (s *RedisSnapshotStore) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	raw, err := s.client.Get(ctx, snapshotKeyPrefix+cartID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("corrupt cart snapshot: %w", err)
	}
	return items, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKeyPrefix+cartID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, snapshotKeyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

// MemorySnapshotStore holds snapshots in process memory. Used by tests and
// by `run --no-redis` for local development.
type MemorySnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{data: make(map[string][]byte)}
}

func (s *MemorySnapshotStore) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	s.mu.RLock()
	raw, ok := s.data[cartID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("corrupt cart snapshot: %w", err)
	}
	return items, nil
}

func (s *MemorySnapshotStore) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	s.mu.Lock()
	s.data[cartID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemorySnapshotStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	delete(s.data, cartID)
	s.mu.Unlock()
	return nil
}

// Put injects raw bytes under a cart id, bypassing encoding. Test hook for
// exercising corrupt-snapshot recovery.
func (s *MemorySnapshotStore) Put(cartID string, raw []byte) {
	s.mu.Lock()
	s.data[cartID] = raw
	s.mu.Unlock()
}
