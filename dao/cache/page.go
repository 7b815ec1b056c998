package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// 首页数据缓存 1 小时，目录变更事件直接按 key 失效
const (
	indexPageKey      = "page:index:data"
	indexPageExpireAt = time.Hour
)

// IndexCacheStorage 首页数据整体缓存
// 存序列化后的 JSON，购物车数目等用户态数据不进缓存
type IndexCacheStorage struct {
	redis *redis.Client
}

func NewIndexCacheStorage(rds *redis.Client) *IndexCacheStorage {
	return &IndexCacheStorage{redis: rds}
}

// Get 缓存未命中返回 (nil, nil)
func (s *IndexCacheStorage) Get(ctx context.Context) ([]byte, error) {
	data, err := s.redis.Get(ctx, indexPageKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *IndexCacheStorage) Set(ctx context.Context, data []byte) error {
	return s.redis.Set(ctx, indexPageKey, data, indexPageExpireAt).Err()
}

// Del 目录变更事件触发的失效
func (s *IndexCacheStorage) Del(ctx context.Context) error {
	return s.redis.Del(ctx, indexPageKey).Err()
}
