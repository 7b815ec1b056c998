package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"FreshMall/config"
	"FreshMall/dao"
	"FreshMall/models"
	"FreshMall/pkg/log"
	"FreshMall/pkg/utils"
	"FreshMall/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 运费为固定值（分），实际开发中属于独立运费子系统
const defaultTransitPrice uint64 = 1000

type OrderService struct {
	Config     *config.Config
	DB         *gorm.DB
	Cart       CartStore
	GoodsDAO   *dao.Goods
	OrderDAO   *dao.Order
	AddressDAO *dao.Address
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	Place(ctx context.Context, uid uint64, skuIDs []uint64) (*types.PlaceOrderResponse, error)
	Commit(ctx context.Context, uid uint64, req *types.CommitOrderRequest) (string, error)
	List(ctx context.Context, uid uint64, cursor int64, pageSize int) (*types.OrderListResponse, error)
	Comment(ctx context.Context, uid uint64, req *types.CommentOrderRequest) error
}

func (s *OrderService) transitPrice() uint64 {
	if s.Config != nil && s.Config.Order != nil && s.Config.Order.TransitPrice > 0 {
		return s.Config.Order.TransitPrice
	}
	return defaultTransitPrice
}

// Place 结算页：按勾选的 sku 渲染商品行、合计与收货地址
// 数量一律以购物车为准，防止前端篡改
func (s *OrderService) Place(ctx context.Context, uid uint64, skuIDs []uint64) (*types.PlaceOrderResponse, error) {
	if len(skuIDs) == 0 {
		return nil, ErrIncompleteData
	}

	skus, err := s.GoodsDAO.GetSKUs(ctx, skuIDs)
	if err != nil {
		return nil, err
	}
	skuMap := make(map[uint64]*models.GoodsSKU, len(skus))
	for _, sku := range skus {
		skuMap[sku.ID] = sku
	}

	resp := &types.PlaceOrderResponse{
		Lines:        make([]*types.OrderLineView, 0, len(skuIDs)),
		TransitPrice: s.transitPrice(),
	}

	for _, skuID := range skuIDs {
		sku, ok := skuMap[skuID]
		if !ok {
			return nil, ErrSkuNotFound
		}

		count, exists, err := s.Cart.Get(ctx, uid, skuID)
		if err != nil {
			return nil, err
		}
		if !exists || count == 0 {
			return nil, ErrCartEntryMissing
		}

		amount := uint64(sku.Price) * uint64(count)
		resp.Lines = append(resp.Lines, &types.OrderLineView{
			SkuID:      sku.ID,
			SkuName:    sku.SkuName,
			Unite:      sku.Unite,
			CoverImage: sku.CoverImage,
			Price:      sku.Price,
			Count:      count,
			Amount:     amount,
		})
		resp.TotalCount += count
		resp.TotalPrice += amount
	}

	resp.TotalPay = resp.TotalPrice + resp.TransitPrice
	resp.SkuIDs = joinSkuIDs(skuIDs)

	addrs, err := s.AddressDAO.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	resp.Addrs = addrs

	return resp, nil
}

// Commit 提交订单的核心事务
// 订单主表、每个 sku 的库存条件扣减、订单明细、总额回填包在一个事务里，
// 任何一步失败整体回滚，不会留下孤儿订单或无明细的库存扣减
func (s *OrderService) Commit(ctx context.Context, uid uint64, req *types.CommitOrderRequest) (string, error) {
	skuIDs, err := parseSkuIDs(req.SkuIDs)
	if err != nil || len(skuIDs) == 0 {
		return "", ErrIncompleteData
	}

	if !models.ValidPayMethod(req.PayMethod) {
		return "", ErrInvalidPayMethod
	}

	if _, err := s.AddressDAO.GetUserAddress(ctx, req.AddrID, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidAddress
		}
		return "", err
	}

	// 订单号：时间戳+用户ID
	orderSn := utils.GenerateOrderSn(uid)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := &models.OrderInfo{
			OrderSn:      orderSn,
			UserID:       uid,
			AddrID:       req.AddrID,
			PayMethod:    req.PayMethod,
			TransitPrice: s.transitPrice(),
			Status:       models.OrderStatusUnpaid,
		}
		if err := s.OrderDAO.Create(ctx, tx, order); err != nil {
			return err
		}

		var totalCount uint32
		var totalPrice uint64

		for _, skuID := range skuIDs {
			// 数量从购物车取，不信任客户端入参
			count, exists, err := s.Cart.Get(ctx, uid, skuID)
			if err != nil {
				return err
			}
			if !exists || count == 0 {
				return ErrCartEntryMissing
			}

			skuID := skuID
			price, err := reserveStock(stockRetryAttempts, count,
				func() (*dao.StockSnapshot, error) {
					snap, err := s.GoodsDAO.StockSnapshot(ctx, tx, skuID)
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return nil, ErrSkuNotFound
					}
					return snap, err
				},
				func(expectedStock, newStock, newSales uint32) (bool, error) {
					return s.GoodsDAO.CompareAndSwapStock(ctx, tx, skuID, expectedStock, newStock, newSales)
				},
			)
			if err != nil {
				return err
			}

			// 库存扣减成功后才写明细；后续 sku 失败时整个事务回滚，
			// 本条明细和它的库存扣减一并消失
			og := &models.OrderGoods{
				OrderID: order.ID,
				SkuID:   skuID,
				Count:   count,
				Price:   price,
			}
			if err := s.OrderDAO.CreateOrderGoods(ctx, tx, og); err != nil {
				return err
			}

			totalCount += count
			totalPrice += uint64(price) * uint64(count)
		}

		return s.OrderDAO.UpdateTotals(ctx, tx, order.ID, totalCount, totalPrice)
	})
	if err != nil {
		return "", err
	}

	// 事务提交后再清理购物车；失败只记日志，残留条目会被下次写覆盖，
	// 不构成一致性问题
	if err := s.Cart.Del(ctx, uid, skuIDs...); err != nil {
		log.L.Warn("clear cart after order commit",
			zap.String("order_sn", orderSn),
			zap.Uint64("user_id", uid),
			zap.Error(err))
	}

	return orderSn, nil
}

// List 订单列表，ID 倒序游标分页
func (s *OrderService) List(ctx context.Context, uid uint64, cursor int64, pageSize int) (*types.OrderListResponse, error) {
	if pageSize <= 0 {
		pageSize = 10 // 默认每页10条
	}

	// 多查一条用来判断是否还有下一页
	orders, err := s.OrderDAO.ListByUserCursor(ctx, uid, cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(orders) > pageSize {
		hasMore = true
		orders = orders[:pageSize]
	}

	resp := &types.OrderListResponse{
		Orders:  make([]*types.OrderView, 0, len(orders)),
		HasMore: hasMore,
	}
	if len(orders) == 0 {
		return resp, nil
	}
	resp.NextCursor = int64(orders[len(orders)-1].ID)

	orderIDs := make([]uint64, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}
	items, err := s.OrderDAO.GoodsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	// 明细按订单分组，同时收集去重后的 sku id 批量查名称
	itemsByOrder := make(map[uint64][]*models.OrderGoods, len(orders))
	skuIDSet := make(map[uint64]struct{})
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
		skuIDSet[item.SkuID] = struct{}{}
	}

	skuMap := make(map[uint64]*models.GoodsSKU)
	if len(skuIDSet) > 0 {
		skuIDs := make([]uint64, 0, len(skuIDSet))
		for id := range skuIDSet {
			skuIDs = append(skuIDs, id)
		}
		skus, err := s.GoodsDAO.GetSKUs(ctx, skuIDs)
		if err != nil {
			return nil, err
		}
		for _, sku := range skus {
			skuMap[sku.ID] = sku
		}
	}

	for _, order := range orders {
		view := &types.OrderView{
			OrderSn:      order.OrderSn,
			Status:       order.Status,
			StatusName:   models.OrderStatusName(order.Status),
			PayMethod:    order.PayMethod,
			TotalCount:   order.TotalCount,
			TotalPrice:   order.TotalPrice,
			TransitPrice: order.TransitPrice,
			TotalPay:     order.TotalPrice + order.TransitPrice,
			TradeNo:      order.TradeNo,
			Created:      order.CreatedAt,
		}
		for _, item := range itemsByOrder[order.ID] {
			line := &types.OrderLineView{
				SkuID:   item.SkuID,
				Count:   item.Count,
				Price:   item.Price, // 下单时点的快照价
				Amount:  uint64(item.Price) * uint64(item.Count),
				Comment: item.Comment,
			}
			if sku, ok := skuMap[item.SkuID]; ok {
				line.SkuName = sku.SkuName
				line.Unite = sku.Unite
				line.CoverImage = sku.CoverImage
			}
			view.Lines = append(view.Lines, line)
		}
		resp.Orders = append(resp.Orders, view)
	}

	return resp, nil
}

// Comment 订单评价：逐条回填明细评价，订单转已完成
func (s *OrderService) Comment(ctx context.Context, uid uint64, req *types.CommentOrderRequest) error {
	order, err := s.OrderDAO.GetBySn(ctx, req.OrderSn, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	// 只有待评价状态的订单可以评价
	if order.Status != models.OrderStatusUnrated {
		return ErrOrderNotFound
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Comments {
			if item.Content == "" {
				continue
			}
			if err := s.OrderDAO.UpdateComment(ctx, tx, order.ID, item.SkuID, item.Content); err != nil {
				return err
			}
		}
		return s.OrderDAO.MarkFinished(ctx, tx, order.ID)
	})
}

func parseSkuIDs(raw string) ([]uint64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uint64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return nil, ErrIncompleteData
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func joinSkuIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}
