package types

import (
	"time"

	"FreshMall/models"
)

// SkuView 商品展示 DTO
type SkuView struct {
	ID         uint64 `json:"id"`
	SpuID      uint64 `json:"spu_id"`
	TypeID     uint64 `json:"type_id"`
	SkuName    string `json:"sku_name"`
	Unite      string `json:"unite"`
	Price      uint32 `json:"price"`
	Stock      uint32 `json:"stock"`
	Sales      uint32 `json:"sales"`
	Brief      string `json:"brief"`
	CoverImage string `json:"cover_image"`
}

// SkuCommentView 商品详情页的历史评价
type SkuCommentView struct {
	OrderSn string    `json:"order_sn"`
	Content string    `json:"content"`
	Created time.Time `json:"created_at"`
}

// GoodsDetailResponse 商品详情页数据
type GoodsDetailResponse struct {
	Sku         *SkuView          `json:"sku"`
	SameSpuSkus []*SkuView        `json:"same_spu_skus"` // 同一 SPU 的其他规格
	NewSkus     []*SkuView        `json:"new_skus"`      // 同类新品推荐
	Comments    []*SkuCommentView `json:"comments"`
	CartCount   int64             `json:"cart_count"`
}

// GoodsListResponse 分类商品列表（游标分页）
type GoodsListResponse struct {
	Type       *models.GoodsType `json:"type"`
	Skus       []*SkuView        `json:"skus"`
	NextCursor int64             `json:"next_cursor"`
	HasMore    bool              `json:"has_more"`
	CartCount  int64             `json:"cart_count"`
}

// IndexData 首页数据（整体进 redis 缓存，购物车数目除外）
type IndexData struct {
	Types   []*models.GoodsType `json:"types"`
	NewSkus []*SkuView          `json:"new_skus"`
}

type IndexResponse struct {
	IndexData
	CartCount int64 `json:"cart_count"`
}

// HistoryResponse 最近浏览
type HistoryResponse struct {
	Skus []*SkuView `json:"skus"`
}

// CreateSkuRequest 运营新增 SKU
type CreateSkuRequest struct {
	SpuID      uint64 `json:"spu_id" binding:"required"`
	TypeID     uint64 `json:"type_id" binding:"required"`
	SkuName    string `json:"sku_name" binding:"required"`
	Unite      string `json:"unite"`
	Price      uint32 `json:"price" binding:"required"`
	Stock      uint32 `json:"stock"`
	Brief      string `json:"brief"`
	CoverImage string `json:"cover_image"`
	Status     int8   `json:"status"`
}
