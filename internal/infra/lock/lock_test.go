package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLock(t *testing.T) (*miniredis.Miniredis, *RedisLock, *RedisLock) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisLock(client, "replica-a"), NewRedisLock(client, "replica-b")
}

func TestRedisLock_SecondReplicaBlocked(t *testing.T) {
	_, a, b := newTestRedisLock(t)
	ctx := context.Background()
	userID := uuid.New()

	ok, err := a.Acquire(ctx, userID, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Acquire(ctx, userID, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Release(ctx, userID))

	ok, err = b.Acquire(ctx, userID, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLock_ExpiredLockNotReleasedByFormerOwner(t *testing.T) {
	mr, a, b := newTestRedisLock(t)
	ctx := context.Background()
	userID := uuid.New()

	ok, err := a.Acquire(ctx, userID, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	ok, err = b.Acquire(ctx, userID, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, a.Release(ctx, userID))
	assert.True(t, mr.Exists(keyPrefix+userID.String()))
}

func TestRedisLock_ReleaseWithoutAcquireIsNoop(t *testing.T) {
	_, a, _ := newTestRedisLock(t)

	assert.NoError(t, a.Release(context.Background(), uuid.New()))
}

func TestMemoryLock_TTL(t *testing.T) {
	l := NewMemoryLock()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	userID := uuid.New()

	ok, _ := l.Acquire(ctx, userID, time.Minute)
	assert.True(t, ok)

	ok, _ = l.Acquire(ctx, userID, time.Minute)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = l.Acquire(ctx, userID, time.Minute)
	assert.True(t, ok, "expired lock is taken over")

	require.NoError(t, l.Release(ctx, userID))
	ok, _ = l.Acquire(ctx, userID, time.Minute)
	assert.True(t, ok)
}
