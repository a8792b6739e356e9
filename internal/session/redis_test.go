package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	log := logrus.New()
	log.SetOutput(io.Discard)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStore(client, 10*time.Minute, log)
	t.Cleanup(func() { s.Close() })
	return s, mr
}

func TestRedisStore_SaveThenLoad(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "abc", sampleState()))
	assert.True(t, mr.Exists(sessionKeyPrefix+"abc"))
	assert.Equal(t, 10*time.Minute, mr.TTL(sessionKeyPrefix+"abc"))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sampleState(), got)
}

func TestRedisStore_Expiry(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "abc", sampleState()))

	mr.FastForward(11 * time.Minute)

	_, err := s.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_CorruptEntryIsDiscarded(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, mr.Set(sessionKeyPrefix+"abc", "{not json"))

	_, err := s.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists(sessionKeyPrefix+"abc"))
}

func TestRedisStore_Delete(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "abc", sampleState()))

	require.NoError(t, s.Delete(ctx, "abc"))
	assert.False(t, mr.Exists(sessionKeyPrefix+"abc"))
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	s, mr := newTestRedisStore(t)
	mr.Close()

	_, err := s.Load(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
