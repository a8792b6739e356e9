package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"animexplorer/internal/config"
	"animexplorer/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const sessionKeyPrefix = "explorer:session:"

// RedisStore shares session state between several explorer instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

// NewRedisClient connects using the R_* environment settings and pings once.
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	host, port, password, db := config.RedisConfig()

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (rs *RedisStore) Load(ctx context.Context, id string) (*models.SessionState, error) {
	cached, err := rs.client.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session from Redis: %w", err)
	}

	var state models.SessionState
	if err := json.Unmarshal([]byte(cached), &state); err != nil {
		rs.logger.WithError(err).WithField("session", id).Warn("Failed to unmarshal session, discarding")
		rs.client.Del(ctx, sessionKeyPrefix+id)
		return nil, ErrNotFound
	}
	return &state, nil
}

func (rs *RedisStore) Save(ctx context.Context, id string, state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := rs.client.Set(ctx, sessionKeyPrefix+id, data, rs.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session to Redis: %w", err)
	}
	rs.logger.WithField("session", id).Debug("Session saved")
	return nil
}

func (rs *RedisStore) Delete(ctx context.Context, id string) error {
	return rs.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
