package service

import (
	"context"
	"errors"

	"FreshMall/models"
	"FreshMall/types"

	"gorm.io/gorm"
)

// CartStore 购物车后端存储（redis hash）
type CartStore interface {
	Get(ctx context.Context, uid, skuID uint64) (uint32, bool, error)
	Set(ctx context.Context, uid, skuID uint64, count uint32) error
	Del(ctx context.Context, uid uint64, skuIDs ...uint64) error
	All(ctx context.Context, uid uint64) (map[uint64]uint32, error)
	Count(ctx context.Context, uid uint64) (int64, error)
}

// SKUReader 商品只读查询
type SKUReader interface {
	GetSKU(ctx context.Context, skuID uint64) (*models.GoodsSKU, error)
	GetSKUs(ctx context.Context, skuIDs []uint64) ([]*models.GoodsSKU, error)
}

type CartService struct {
	Cart  CartStore
	Goods SKUReader
}

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	Add(ctx context.Context, uid, skuID uint64, count uint32) (int64, error)
	Update(ctx context.Context, uid, skuID uint64, count uint32) (int64, error)
	Remove(ctx context.Context, uid, skuID uint64) (int64, error)
	List(ctx context.Context, uid uint64) (*types.CartInfoResponse, error)
	Count(ctx context.Context, uid uint64) (int64, error)
}

// Add 添加购物车记录，同一 sku 数量累加
// 库存校验是软校验，提交订单时会在事务内重新校验
func (s *CartService) Add(ctx context.Context, uid, skuID uint64, count uint32) (int64, error) {
	if count == 0 {
		return 0, ErrInvalidQuantity
	}

	sku, err := s.Goods.GetSKU(ctx, skuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSkuNotFound
		}
		return 0, err
	}

	// 先取已有数量再累加
	existing, _, err := s.Cart.Get(ctx, uid, skuID)
	if err != nil {
		return 0, err
	}
	total := existing + count

	if total > sku.Stock {
		return 0, ErrInsufficientStock
	}

	if err := s.Cart.Set(ctx, uid, skuID, total); err != nil {
		return 0, err
	}

	return s.Cart.Count(ctx, uid)
}

// Update 覆盖写购物车数量（非累加），重复请求天然幂等
func (s *CartService) Update(ctx context.Context, uid, skuID uint64, count uint32) (int64, error) {
	if count == 0 {
		return 0, ErrInvalidQuantity
	}

	sku, err := s.Goods.GetSKU(ctx, skuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSkuNotFound
		}
		return 0, err
	}

	if count > sku.Stock {
		return 0, ErrInsufficientStock
	}

	if err := s.Cart.Set(ctx, uid, skuID, count); err != nil {
		return 0, err
	}

	return s.Cart.Count(ctx, uid)
}

// Remove 删除购物车记录，条目不存在时同样成功
func (s *CartService) Remove(ctx context.Context, uid, skuID uint64) (int64, error) {
	if err := s.Cart.Del(ctx, uid, skuID); err != nil {
		return 0, err
	}
	return s.Cart.Count(ctx, uid)
}

// List 购物车页数据，小计等展示字段只进 DTO
func (s *CartService) List(ctx context.Context, uid uint64) (*types.CartInfoResponse, error) {
	items, err := s.Cart.All(ctx, uid)
	if err != nil {
		return nil, err
	}

	resp := &types.CartInfoResponse{Lines: make([]*types.CartLine, 0, len(items))}
	if len(items) == 0 {
		return resp, nil
	}

	skuIDs := make([]uint64, 0, len(items))
	for id := range items {
		skuIDs = append(skuIDs, id)
	}
	skus, err := s.Goods.GetSKUs(ctx, skuIDs)
	if err != nil {
		return nil, err
	}

	for _, sku := range skus {
		count := items[sku.ID]
		amount := uint64(sku.Price) * uint64(count)
		resp.Lines = append(resp.Lines, &types.CartLine{
			SkuID:      sku.ID,
			SkuName:    sku.SkuName,
			Unite:      sku.Unite,
			CoverImage: sku.CoverImage,
			Price:      sku.Price,
			Count:      count,
			Amount:     amount,
			Stock:      sku.Stock,
		})
		resp.TotalCount += count
		resp.TotalPrice += amount
	}

	return resp, nil
}

// Count 购物车角标展示用的条目数
func (s *CartService) Count(ctx context.Context, uid uint64) (int64, error) {
	return s.Cart.Count(ctx, uid)
}
