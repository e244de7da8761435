package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/domain"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore is the durable swap-in for MemorySessionStore: one redis
// list per session, RPUSH keeps the append-only ordering contract. TTL is
// refreshed on every touch.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(addr, password string, db int, ttl time.Duration) (*RedisSessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSessionStore{client: client, ttl: ttl}, nil
}

func sessionKey(sessionID string) string {
	return "governance_session:" + sessionID
}

func (s *RedisSessionStore) GetOrCreate(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	key := sessionKey(sessionID)
	entries, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", sessionID, err)
	}

	turns := make([]domain.Turn, 0, len(entries))
	for _, entry := range entries {
		var turn domain.Turn
		if err := json.Unmarshal([]byte(entry), &turn); err != nil {
			return nil, fmt.Errorf("decode session %s turn: %w", sessionID, err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *RedisSessionStore) Append(ctx context.Context, sessionID string, turn domain.Turn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("encode turn: %w", err)
	}

	key := sessionKey(sessionID)
	if err := s.client.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("append session %s: %w", sessionID, err)
	}
	s.client.Expire(ctx, key, s.ttl)
	return nil
}

func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
