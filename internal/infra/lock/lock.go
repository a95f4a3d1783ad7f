// Package lock provides the per-user submission lock.
package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"carebridge/config"
	"carebridge/internal/domain/lifecycle"
	"carebridge/internal/domain/service"
	"carebridge/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "carebridge:submission:"

// releaseScript deletes the key only when it still carries our token, so an
// expired lock taken over by another replica is not released by us.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock is a SET NX lock shared by every replica.
type RedisLock struct {
	client goredis.UniversalClient
	owner  string

	mu     sync.Mutex
	tokens map[uuid.UUID]string
}

// NewRedisLock wraps client. owner prefixes the lock tokens of this replica.
func NewRedisLock(client goredis.UniversalClient, owner string) *RedisLock {
	return &RedisLock{
		client: client,
		owner:  owner,
		tokens: make(map[uuid.UUID]string),
	}
}

func (l *RedisLock) Acquire(ctx context.Context, userID uuid.UUID, ttl time.Duration) (bool, error) {
	token := l.owner + ":" + uuid.NewString()

	ok, err := l.client.SetNX(ctx, keyPrefix+userID.String(), token, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire submission lock")
	}
	if !ok {
		return false, nil
	}

	l.mu.Lock()
	l.tokens[userID] = token
	l.mu.Unlock()

	return true, nil
}

func (l *RedisLock) Release(ctx context.Context, userID uuid.UUID) error {
	l.mu.Lock()
	token, ok := l.tokens[userID]
	delete(l.tokens, userID)
	l.mu.Unlock()

	if !ok {
		return nil
	}

	if err := releaseScript.Run(ctx, l.client, []string{keyPrefix + userID.String()}, token).Err(); err != nil {
		return errors.Wrap(err, "failed to release submission lock")
	}

	return nil
}

// MemoryLock is the single-process lock used when Redis is not configured.
type MemoryLock struct {
	mu      sync.Mutex
	expires map[uuid.UUID]time.Time
	now     func() time.Time
}

func NewMemoryLock() *MemoryLock {
	return &MemoryLock{
		expires: make(map[uuid.UUID]time.Time),
		now:     time.Now,
	}
}

func (l *MemoryLock) Acquire(_ context.Context, userID uuid.UUID, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if expiry, held := l.expires[userID]; held && now.Before(expiry) {
		return false, nil
	}
	l.expires[userID] = now.Add(ttl)

	return true, nil
}

func (l *MemoryLock) Release(_ context.Context, userID uuid.UUID) error {
	l.mu.Lock()
	delete(l.expires, userID)
	l.mu.Unlock()

	return nil
}

// Params defines the parameters required for the submission lock
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New selects the Redis lock when an address is configured, the memory lock otherwise.
func New(params Params) service.SubmissionLock {
	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("[Lock] Redis not configured, using in-memory submission lock")

		return NewMemoryLock()
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("[Lock] Using redis submission lock", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLock(client, params.Config.Env.ServiceName)
}
