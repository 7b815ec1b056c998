package service

import (
	"context"
	"encoding/json"
	"errors"

	"FreshMall/dao"
	"FreshMall/dao/cache"
	"FreshMall/models"
	"FreshMall/pkg/log"
	"FreshMall/pkg/rocketmq"
	"FreshMall/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const indexNewSkuLimit = 6

type GoodsService struct {
	GoodsDAO   *dao.Goods
	OrderDAO   *dao.Order
	Cart       CartStore
	History    *cache.HistoryStorage
	IndexCache *cache.IndexCacheStorage
	Queue      rocketmq.Queue
}

var _ IGoodsService = (*GoodsService)(nil)

type IGoodsService interface {
	Index(ctx context.Context, uid uint64) (*types.IndexResponse, error)
	Detail(ctx context.Context, uid, skuID uint64) (*types.GoodsDetailResponse, error)
	List(ctx context.Context, uid, typeID uint64, sort string, cursor int64, limit int) (*types.GoodsListResponse, error)
	BrowseHistory(ctx context.Context, uid uint64) (*types.HistoryResponse, error)
	CreateSKU(ctx context.Context, req *types.CreateSkuRequest) error
	RebuildIndexCache(ctx context.Context) error
	InvalidateIndexCache(ctx context.Context) error
}

func toSkuView(sku *models.GoodsSKU) *types.SkuView {
	return &types.SkuView{
		ID:         sku.ID,
		SpuID:      sku.SpuID,
		TypeID:     sku.TypeID,
		SkuName:    sku.SkuName,
		Unite:      sku.Unite,
		Price:      sku.Price,
		Stock:      sku.Stock,
		Sales:      sku.Sales,
		Brief:      sku.Brief,
		CoverImage: sku.CoverImage,
	}
}

func toSkuViews(skus []*models.GoodsSKU) []*types.SkuView {
	views := make([]*types.SkuView, len(skus))
	for i, sku := range skus {
		views[i] = toSkuView(sku)
	}
	return views
}

// Index 首页数据
// 类目和新品整体走缓存，购物车数目是用户态数据每次实时取
func (s *GoodsService) Index(ctx context.Context, uid uint64) (*types.IndexResponse, error) {
	resp := &types.IndexResponse{}

	cached, err := s.IndexCache.Get(ctx)
	if err != nil {
		// 缓存故障退化为直查数据库
		log.L.Warn("get index cache", zap.Error(err))
	}
	if cached != nil {
		if err := json.Unmarshal(cached, &resp.IndexData); err != nil {
			cached = nil
		}
	}
	if cached == nil {
		data, err := s.buildIndexData(ctx)
		if err != nil {
			return nil, err
		}
		resp.IndexData = *data

		if raw, err := json.Marshal(data); err == nil {
			if err := s.IndexCache.Set(ctx, raw); err != nil {
				log.L.Warn("set index cache", zap.Error(err))
			}
		}
	}

	if uid > 0 {
		count, err := s.Cart.Count(ctx, uid)
		if err == nil {
			resp.CartCount = count
		}
	}

	return resp, nil
}

func (s *GoodsService) buildIndexData(ctx context.Context) (*types.IndexData, error) {
	ts, err := s.GoodsDAO.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	newSkus, err := s.GoodsDAO.Newest(ctx, indexNewSkuLimit)
	if err != nil {
		return nil, err
	}
	return &types.IndexData{
		Types:   ts,
		NewSkus: toSkuViews(newSkus),
	}, nil
}

// Detail 商品详情页：同 SPU 规格、同类新品、历史评价
// 已登录用户顺带写一条浏览历史
func (s *GoodsService) Detail(ctx context.Context, uid, skuID uint64) (*types.GoodsDetailResponse, error) {
	sku, err := s.GoodsDAO.GetSKU(ctx, skuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkuNotFound
		}
		return nil, err
	}

	sameSpu, err := s.GoodsDAO.SameSpuSKUs(ctx, sku.SpuID, sku.ID)
	if err != nil {
		return nil, err
	}
	newSkus, err := s.GoodsDAO.NewestByType(ctx, sku.TypeID, 2)
	if err != nil {
		return nil, err
	}
	comments, err := s.OrderDAO.CommentsBySku(ctx, skuID, 30)
	if err != nil {
		return nil, err
	}

	resp := &types.GoodsDetailResponse{
		Sku:         toSkuView(sku),
		SameSpuSkus: toSkuViews(sameSpu),
		NewSkus:     toSkuViews(newSkus),
		Comments:    make([]*types.SkuCommentView, len(comments)),
	}
	for i, c := range comments {
		resp.Comments[i] = &types.SkuCommentView{
			OrderSn: c.OrderSn,
			Content: c.Content,
			Created: c.CreatedAt,
		}
	}

	if uid > 0 {
		if count, err := s.Cart.Count(ctx, uid); err == nil {
			resp.CartCount = count
		}
		// 浏览历史写失败不影响详情页
		if err := s.History.Push(ctx, uid, skuID); err != nil {
			log.L.Warn("push browse history",
				zap.Uint64("user_id", uid),
				zap.Uint64("sku_id", skuID),
				zap.Error(err))
		}
	}

	return resp, nil
}

// List 分类商品列表
func (s *GoodsService) List(ctx context.Context, uid, typeID uint64, sort string, cursor int64, limit int) (*types.GoodsListResponse, error) {
	if limit <= 0 || limit > 20 {
		limit = 20
	}

	t, err := s.GoodsDAO.GetType(ctx, typeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkuNotFound
		}
		return nil, err
	}

	skus, err := s.GoodsDAO.ListByTypeCursor(ctx, typeID, sort, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(skus) > limit {
		hasMore = true
		skus = skus[:limit]
	}

	resp := &types.GoodsListResponse{
		Type:    t,
		Skus:    toSkuViews(skus),
		HasMore: hasMore,
	}
	if len(skus) > 0 {
		resp.NextCursor = int64(skus[len(skus)-1].ID)
	}

	if uid > 0 {
		if count, err := s.Cart.Count(ctx, uid); err == nil {
			resp.CartCount = count
		}
	}

	return resp, nil
}

// BrowseHistory 最近浏览，保持 redis 中的先后顺序
func (s *GoodsService) BrowseHistory(ctx context.Context, uid uint64) (*types.HistoryResponse, error) {
	ids, err := s.History.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	resp := &types.HistoryResponse{Skus: make([]*types.SkuView, 0, len(ids))}
	if len(ids) == 0 {
		return resp, nil
	}

	skus, err := s.GoodsDAO.GetSKUs(ctx, ids)
	if err != nil {
		return nil, err
	}
	skuMap := make(map[uint64]*models.GoodsSKU, len(skus))
	for _, sku := range skus {
		skuMap[sku.ID] = sku
	}
	for _, id := range ids {
		if sku, ok := skuMap[id]; ok {
			resp.Skus = append(resp.Skus, toSkuView(sku))
		}
	}

	return resp, nil
}

// catalogEvent 目录变更事件载荷
type catalogEvent struct {
	SkuID  uint64 `json:"sku_id"`
	TypeID uint64 `json:"type_id"`
}

// CreateSKU 运营上架商品
// 写库后投递目录变更事件和静态页重建任务，投递失败只记日志，
// 缓存最长一小时后自然过期
func (s *GoodsService) CreateSKU(ctx context.Context, req *types.CreateSkuRequest) error {
	sku := &models.GoodsSKU{
		SpuID:      req.SpuID,
		TypeID:     req.TypeID,
		SkuName:    req.SkuName,
		Unite:      req.Unite,
		Price:      req.Price,
		Stock:      req.Stock,
		Brief:      req.Brief,
		CoverImage: req.CoverImage,
		Status:     req.Status,
	}
	if err := s.GoodsDAO.CreateSKU(ctx, sku); err != nil {
		return err
	}

	body, _ := json.Marshal(catalogEvent{SkuID: sku.ID, TypeID: sku.TypeID})
	if err := s.Queue.SendMsg(ctx, rocketmq.TopicCatalogChanged, body); err != nil {
		log.L.Warn("send catalog changed event", zap.Error(err))
	}
	if err := s.Queue.SendMsg(ctx, rocketmq.TopicStaticIndex, body); err != nil {
		log.L.Warn("send static index task", zap.Error(err))
	}

	return nil
}

// RebuildIndexCache 静态首页重建任务（task-worker 消费）
func (s *GoodsService) RebuildIndexCache(ctx context.Context) error {
	data, err := s.buildIndexData(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.IndexCache.Set(ctx, raw)
}

// InvalidateIndexCache 目录变更事件的缓存失效
func (s *GoodsService) InvalidateIndexCache(ctx context.Context) error {
	return s.IndexCache.Del(ctx)
}
