package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cogscreen:profile:"

// redisProfileRepo implements ProfileRepo on Redis. The latest profile is a
// JSON string value and the history a list with the newest entry first.
type redisProfileRepo struct {
	client *redis.Client
}

// NewRedisProfileRepo returns a ProfileRepo backed by client.
func NewRedisProfileRepo(client *redis.Client) ProfileRepo {
	return &redisProfileRepo{client: client}
}

func latestKey(userID string) string  { return redisKeyPrefix + userID }
func historyKey(userID string) string { return redisKeyPrefix + userID + ":history" }

func (r *redisProfileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	data, err := r.client.Get(ctx, latestKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

func (r *redisProfileRepo) Set(ctx context.Context, userID string, p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, latestKey(userID), data, 0)
	pipe.LPush(ctx, historyKey(userID), data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *redisProfileRepo) History(ctx context.Context, userID string, limit int) ([]Profile, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	items, err := r.client.LRange(ctx, historyKey(userID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("query profile history: %w", err)
	}

	out := make([]Profile, 0, len(items))
	for _, item := range items {
		var p Profile
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *redisProfileRepo) Prune(ctx context.Context, userID string, keep int) error {
	if keep <= 0 {
		return r.client.Del(ctx, historyKey(userID)).Err()
	}
	return r.client.LTrim(ctx, historyKey(userID), 0, int64(keep)-1).Err()
}

// OpenRedis connects to the Redis server at addr and verifies it is
// reachable. A redis:// URL is also accepted.
func OpenRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	var opts *redis.Options
	if parsed, err := redis.ParseURL(addr); err == nil {
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr, Password: password, DB: db}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
