package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

const redisKeyPrefix = "shortlink:url:"

// Redis общий для экземпляров кэш
type Redis struct {
	client     redis.UniversalClient
	defaultTTL time.Duration
	logger     *zap.Logger
}

func NewRedis(client redis.UniversalClient, defaultTTL time.Duration, logger *zap.Logger) *Redis {
	if defaultTTL <= 0 {
		defaultTTL = time.Hour
	}
	return &Redis{client: client, defaultTTL: defaultTTL, logger: logger}
}

func (r *Redis) Get(ctx context.Context, code model.Code) (model.URL, bool) {
	v, err := r.client.Get(ctx, redisKeyPrefix+string(code)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("redis cache get failed", zap.String("code", string(code)), zap.Error(err))
		}
		return "", false
	}
	return model.URL(v), true
}

func (r *Redis) Set(ctx context.Context, code model.Code, url model.URL, ttl time.Duration) {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	if err := r.client.Set(ctx, redisKeyPrefix+string(code), string(url), ttl).Err(); err != nil {
		r.logger.Warn("redis cache set failed", zap.String("code", string(code)), zap.Error(err))
	}
}

func (r *Redis) Delete(ctx context.Context, codes []model.Code) {
	if len(codes) == 0 {
		return
	}

	keys := make([]string, len(codes))
	for i, c := range codes {
		keys[i] = redisKeyPrefix + string(c)
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("redis cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
