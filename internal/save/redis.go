package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/gravitas-games/homestead/internal/config"
)

// RedisStore keeps saves as JSON strings under prefix+playerID.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects using cfg and verifies the connection.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisStore{client: client, prefix: cfg.KeyPrefix}, nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(playerID string) string { return s.prefix + playerID }

// Save stores data.
func (s *RedisStore) Save(ctx context.Context, data *Data) error {
	if data.PlayerID == "" {
		return errors.New("save: missing player id")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	if err := s.client.Set(ctx, s.key(data.PlayerID), b, 0).Err(); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

// Load fetches the player's save.
func (s *RedisStore) Load(ctx context.Context, playerID string) (*Data, error) {
	b, err := s.client.Get(ctx, s.key(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}
	return &d, nil
}

// Close releases the client.
func (s *RedisStore) Close() error { return s.client.Close() }
