package service

import (
	"context"
	"encoding/json"
	"time"

	"healthcare-saas-backend/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	roleListKey = "roles:all"
	roleListTTL = 5 * time.Minute
)

// RoleCache is a read-through cache for the role list. Cache failures are
// logged and treated as misses, the database remains the source of truth.
type RoleCache interface {
	GetAll(ctx context.Context) ([]dto.RoleResponse, bool)
	SetAll(ctx context.Context, roles []dto.RoleResponse)
	Invalidate(ctx context.Context)
}

type roleCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRoleCache(redisClient *redis.Client, log *logrus.Logger) RoleCache {
	return &roleCache{
		redisClient: redisClient,
		log:         log,
	}
}

func (c *roleCache) GetAll(ctx context.Context) ([]dto.RoleResponse, bool) {
	payload, err := c.redisClient.Get(ctx, roleListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read role cache: %+v", err)
		}
		return nil, false
	}

	var roles []dto.RoleResponse
	if err := json.Unmarshal(payload, &roles); err != nil {
		c.log.Warnf("Failed to decode role cache, dropping it: %+v", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return roles, true
}

func (c *roleCache) SetAll(ctx context.Context, roles []dto.RoleResponse) {
	payload, err := json.Marshal(roles)
	if err != nil {
		c.log.Warnf("Failed to encode role cache: %+v", err)
		return
	}
	if err := c.redisClient.Set(ctx, roleListKey, payload, roleListTTL).Err(); err != nil {
		c.log.Warnf("Failed to write role cache: %+v", err)
	}
}

func (c *roleCache) Invalidate(ctx context.Context) {
	if err := c.redisClient.Del(ctx, roleListKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate role cache: %+v", err)
	}
}
