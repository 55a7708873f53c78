package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/youruser/clubposts/internal/graphic"
)

const (
	keyPrefix = "clubposts:graphic:"
	indexKey  = "clubposts:graphics"
)

// RedisStore keeps graphics as JSON values with a TTL; a sorted set scored
// by generation time indexes them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisClient builds a client for addr.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func NewRedisStore(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStore{client: client, ttl: ttl, log: log}
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Save(ctx context.Context, g graphic.Generated) error {
	b, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal graphic %s: %w", g.ID, err)
	}
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, keyPrefix+g.ID, b, s.ttl)
		p.ZAdd(ctx, indexKey, redis.Z{Score: float64(g.GeneratedAt.UnixNano()), Member: g.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("save graphic %s: %w", g.ID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (graphic.Generated, error) {
	b, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return graphic.Generated{}, ErrNotFound
	}
	if err != nil {
		return graphic.Generated{}, fmt.Errorf("get graphic %s: %w", id, err)
	}
	var g graphic.Generated
	if err := json.Unmarshal(b, &g); err != nil {
		return graphic.Generated{}, fmt.Errorf("decode graphic %s: %w", id, err)
	}
	return g, nil
}

// List walks the index newest first and drops ids whose value has expired.
func (s *RedisStore) List(ctx context.Context) ([]graphic.Generated, error) {
	ids, err := s.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list graphics: %w", err)
	}
	out := make([]graphic.Generated, 0, len(ids))
	var expired []any
	for _, id := range ids {
		g, err := s.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			expired = append(expired, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if len(expired) > 0 {
		if err := s.client.ZRem(ctx, indexKey, expired...).Err(); err != nil {
			s.log.Warn("failed to prune graphic index", zap.Int("expired", len(expired)), zap.Error(err))
		}
	}
	return out, nil
}
