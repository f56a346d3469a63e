package cache

import (
	"context"
	"encoding/json"
	"time"

	"Bazaar/pkg/log"
	"Bazaar/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	categoryTreeKey = "bazaar:catalog:categories"
	categoryTreeTTL = 10 * time.Minute
)

// CategoryCache 分类树是读多写少的参考数据，整棵缓存
type CategoryCache struct {
	redis *redis.Client
}

func NewCategoryCache(rds *redis.Client) *CategoryCache {
	return &CategoryCache{redis: rds}
}

func (c *CategoryCache) Get(ctx context.Context) ([]types.Category, bool) {
	raw, err := c.redis.Get(ctx, categoryTreeKey).Bytes()
	if err != nil {
		return nil, false
	}

	var categories []types.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		log.L.Warn("decode category cache", zap.Error(err))
		return nil, false
	}
	return categories, true
}

func (c *CategoryCache) Set(ctx context.Context, categories []types.Category) {
	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, categoryTreeKey, raw, categoryTreeTTL).Err(); err != nil {
		log.L.Warn("write category cache", zap.Error(err))
	}
}
