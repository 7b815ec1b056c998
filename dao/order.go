package dao

import (
	"context"
	"time"

	"FreshMall/models"
	"FreshMall/pkg/snowflake"

	"gorm.io/gorm"
)

type Order struct {
	Db *gorm.DB
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{Db: db}
}

// Create 写入订单主表
// 提交事务内调用时传事务句柄，保证和明细、库存变更同生共死
func (o *Order) Create(ctx context.Context, db *gorm.DB, order *models.OrderInfo) error {
	if db == nil {
		db = o.Db
	}
	return db.WithContext(ctx).Create(order).Error
}

func (o *Order) CreateOrderGoods(ctx context.Context, db *gorm.DB, og *models.OrderGoods) error {
	if db == nil {
		db = o.Db
	}
	return db.WithContext(ctx).Create(og).Error
}

// UpdateTotals 回填订单总件数、总金额（下单事务的最后一步）
func (o *Order) UpdateTotals(ctx context.Context, db *gorm.DB, orderID uint64, totalCount uint32, totalPrice uint64) error {
	if db == nil {
		db = o.Db
	}
	return db.WithContext(ctx).Model(&models.OrderInfo{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"total_count": totalCount,
			"total_price": totalPrice,
		}).Error
}

func (o *Order) GetBySn(ctx context.Context, orderSn string, userID uint64) (*models.OrderInfo, error) {
	var order models.OrderInfo
	err := o.Db.WithContext(ctx).
		Where("order_sn = ? AND user_id = ?", orderSn, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUserCursor 用户订单列表，ID 倒序游标分页
func (o *Order) ListByUserCursor(ctx context.Context, userID uint64, cursor int64, limit int) ([]*models.OrderInfo, error) {
	query := o.Db.WithContext(ctx).Where("user_id = ?", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	var orders []*models.OrderInfo
	err := query.Order("id desc").Limit(limit).Find(&orders).Error
	return orders, err
}

func (o *Order) GoodsByOrderID(ctx context.Context, orderID uint64) ([]*models.OrderGoods, error) {
	var items []*models.OrderGoods
	err := o.Db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (o *Order) GoodsByOrderIDs(ctx context.Context, orderIDs []uint64) ([]*models.OrderGoods, error) {
	var items []*models.OrderGoods
	err := o.Db.WithContext(ctx).Where("order_id IN ?", orderIDs).Find(&items).Error
	return items, err
}

// MarkPaid 待支付 -> 待评价，并回填网关交易号
// 条件更新保证重复的支付确认只生效一次
func (o *Order) MarkPaid(ctx context.Context, orderSn, tradeNo string) (bool, error) {
	now := time.Now()
	res := o.Db.WithContext(ctx).Model(&models.OrderInfo{}).
		Where("order_sn = ? AND status = ?", orderSn, models.OrderStatusUnpaid).
		Updates(map[string]interface{}{
			"status":   models.OrderStatusUnrated,
			"trade_no": tradeNo,
			"paid_at":  &now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CreatePayRecord 支付确认后落一条流水，供对账与审计
func (o *Order) CreatePayRecord(ctx context.Context, rec *models.PayRecord) error {
	if rec.ID == 0 {
		rec.ID = uint64(snowflake.GenID())
	}
	return o.Db.WithContext(ctx).Create(rec).Error
}

// UpdateComment 回填单个商品的评价内容
func (o *Order) UpdateComment(ctx context.Context, db *gorm.DB, orderID, skuID uint64, content string) error {
	if db == nil {
		db = o.Db
	}
	return db.WithContext(ctx).Model(&models.OrderGoods{}).
		Where("order_id = ? AND sku_id = ?", orderID, skuID).
		Update("comment", content).Error
}

// MarkFinished 待评价 -> 已完成
func (o *Order) MarkFinished(ctx context.Context, db *gorm.DB, orderID uint64) error {
	if db == nil {
		db = o.Db
	}
	return db.WithContext(ctx).Model(&models.OrderInfo{}).
		Where("id = ?", orderID).
		Update("status", models.OrderStatusFinished).Error
}

// SkuComment 商品详情页的历史评价行
type SkuComment struct {
	OrderSn   string    `gorm:"column:order_sn"`
	Content   string    `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// CommentsBySku 该 SKU 的非空评价，最新在前
func (o *Order) CommentsBySku(ctx context.Context, skuID uint64, limit int) ([]*SkuComment, error) {
	var comments []*SkuComment
	err := o.Db.WithContext(ctx).Table("order_goods").
		Select("order_info.order_sn, order_goods.comment, order_goods.created_at").
		Joins("JOIN order_info ON order_info.id = order_goods.order_id").
		Where("order_goods.sku_id = ? AND order_goods.comment <> ''", skuID).
		Order("order_goods.id desc").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}
