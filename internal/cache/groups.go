// Package cache - read-through кэш списка групповых тренировок.
// Решения о местах и hold принимаются только по базе, кэш нужен лишь листингам.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const (
	groupsPrefix   = "groups:"
	groupsIndexKey = "groups:keys"
)

type GroupCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewGroupCache с nil клиентом возвращает выключенный кэш: всегда промах.
func NewGroupCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *GroupCache {
	if rdb == nil {
		log.Warn("redis is not configured, group listing cache disabled")
	}
	return &GroupCache{rdb: rdb, ttl: ttl, logger: log}
}

// NewRedisClient с пустым addr возвращает nil: кэш выключен.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func GroupsKey(date *time.Time) string {
	if date == nil {
		return groupsPrefix + "all"
	}
	return groupsPrefix + date.Format(time.DateOnly)
}

func (c *GroupCache) GetGroups(ctx context.Context, key string) ([]*domain.GroupTraining, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("group cache read failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var groups []*domain.GroupTraining
	if err = json.Unmarshal([]byte(raw), &groups); err != nil {
		c.logger.Warn("group cache entry is corrupted",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	return groups, true
}

func (c *GroupCache) SetGroups(ctx context.Context, key string, groups []*domain.GroupTraining) {
	if c.rdb == nil {
		return
	}

	data, err := json.Marshal(groups)
	if err != nil {
		return
	}

	if err = c.rdb.Set(ctx, key, string(data), c.ttl).Err(); err != nil {
		c.logger.Warn("group cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return
	}
	if err = c.rdb.SAdd(ctx, groupsIndexKey, key).Err(); err != nil {
		c.logger.Warn("group cache index write failed", logger.String("error", err.Error()))
	}
}

// InvalidateGroups сбрасывает все закэшированные листинги после изменения мест.
func (c *GroupCache) InvalidateGroups(ctx context.Context) {
	if c.rdb == nil {
		return
	}

	keys, err := c.rdb.SMembers(ctx, groupsIndexKey).Result()
	if err != nil {
		c.logger.Warn("group cache invalidation failed", logger.String("error", err.Error()))
		return
	}

	if err = c.rdb.Del(ctx, append(keys, groupsIndexKey)...).Err(); err != nil {
		c.logger.Warn("group cache invalidation failed", logger.String("error", err.Error()))
	}
}
