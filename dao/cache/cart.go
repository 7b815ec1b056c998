package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// CartStorage 购物车存储
// 每个用户一个 hash：cart:<uid> -> {sku_id: count}
// 只有用户本人会写自己的购物车，单 key 读写无需额外加锁
type CartStorage struct {
	redis *redis.Client
}

func NewCartStorage(rds *redis.Client) *CartStorage {
	return &CartStorage{redis: rds}
}

// Get 获取某个商品在购物车中的数量
// 返回的 bool 标识条目是否存在
func (c *CartStorage) Get(ctx context.Context, uid, skuID uint64) (uint32, bool, error) {
	val, err := c.redis.HGet(ctx, c.key(uid), strconv.FormatUint(skuID, 10)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	count, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint32(count), true, nil
}

// Set 覆盖写入购物车条目（sku 已存在则更新数量，不存在则添加）
func (c *CartStorage) Set(ctx context.Context, uid, skuID uint64, count uint32) error {
	return c.redis.HSet(ctx, c.key(uid), strconv.FormatUint(skuID, 10), count).Err()
}

// Del 删除若干购物车条目，条目不存在不算错误
func (c *CartStorage) Del(ctx context.Context, uid uint64, skuIDs ...uint64) error {
	if len(skuIDs) == 0 {
		return nil
	}
	fields := make([]string, len(skuIDs))
	for i, id := range skuIDs {
		fields[i] = strconv.FormatUint(id, 10)
	}
	return c.redis.HDel(ctx, c.key(uid), fields...).Err()
}

// All 整个购物车 {sku_id: count}
func (c *CartStorage) All(ctx context.Context, uid uint64) (map[uint64]uint32, error) {
	items, err := c.redis.HGetAll(ctx, c.key(uid)).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[uint64]uint32, len(items))
	for field, val := range items {
		skuID, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		count, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			continue
		}
		result[skuID] = uint32(count)
	}
	return result, nil
}

// Count 购物车中不同商品的条目数（角标展示），HLen O(1)
func (c *CartStorage) Count(ctx context.Context, uid uint64) (int64, error) {
	return c.redis.HLen(ctx, c.key(uid)).Result()
}

// cart:<uid>
func (c *CartStorage) key(uid uint64) string {
	return fmt.Sprintf("cart:%d", uid)
}
