package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// 浏览历史只保留最近 5 条
const historyLimit = 5

// HistoryStorage 用户浏览历史
// history:<uid> -> [sku_id, ...] 最新在前、去重
type HistoryStorage struct {
	redis *redis.Client
}

func NewHistoryStorage(rds *redis.Client) *HistoryStorage {
	return &HistoryStorage{redis: rds}
}

// Push 记录一次浏览：先移除旧记录再左插，最后裁剪
func (h *HistoryStorage) Push(ctx context.Context, uid, skuID uint64) error {
	key := h.key(uid)
	member := strconv.FormatUint(skuID, 10)

	_, err := h.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, key, 0, member)
		pipe.LPush(ctx, key, member)
		pipe.LTrim(ctx, key, 0, historyLimit-1)
		return nil
	})
	return err
}

// List 最近浏览的 sku id，最新在前
func (h *HistoryStorage) List(ctx context.Context, uid uint64) ([]uint64, error) {
	items, err := h.redis.LRange(ctx, h.key(uid), 0, historyLimit-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		id, err := strconv.ParseUint(item, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// history:<uid>
func (h *HistoryStorage) key(uid uint64) string {
	return fmt.Sprintf("history:%d", uid)
}
