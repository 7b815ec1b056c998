package dao

import (
	"context"

	"FreshMall/models"

	"gorm.io/gorm"
)

type Goods struct {
	Db *gorm.DB
}

func NewGoods(db *gorm.DB) *Goods {
	return &Goods{Db: db}
}

// StockSnapshot 库存台账的时点读
type StockSnapshot struct {
	Stock uint32 `gorm:"column:stock"`
	Sales uint32 `gorm:"column:sales"`
	Price uint32 `gorm:"column:price"`
}

func (g *Goods) GetSKU(ctx context.Context, skuID uint64) (*models.GoodsSKU, error) {
	var sku models.GoodsSKU
	err := g.Db.WithContext(ctx).Where("id = ?", skuID).First(&sku).Error
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

func (g *Goods) GetSKUs(ctx context.Context, skuIDs []uint64) ([]*models.GoodsSKU, error) {
	var skus []*models.GoodsSKU
	err := g.Db.WithContext(ctx).Where("id IN ?", skuIDs).Find(&skus).Error
	return skus, err
}

// StockSnapshot 读取库存/销量/单价的当前值
// db 传事务句柄则在事务内读，传 nil 走普通连接
func (g *Goods) StockSnapshot(ctx context.Context, db *gorm.DB, skuID uint64) (*StockSnapshot, error) {
	if db == nil {
		db = g.Db
	}
	var snap StockSnapshot
	err := db.WithContext(ctx).Model(&models.GoodsSKU{}).
		Select("stock", "sales", "price").
		Where("id = ?", skuID).
		Take(&snap).Error
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// CompareAndSwapStock 库存的唯一变更路径
// 仅当持久化的 stock 仍等于 expectedStock 时一条 UPDATE 同时写入新库存和新销量，
// 返回 false 表示并发下单抢先提交，调用方自行决定重试
func (g *Goods) CompareAndSwapStock(ctx context.Context, db *gorm.DB, skuID uint64, expectedStock, newStock, newSales uint32) (bool, error) {
	if db == nil {
		db = g.Db
	}
	res := db.WithContext(ctx).Model(&models.GoodsSKU{}).
		Where("id = ? AND stock = ?", skuID, expectedStock).
		Updates(map[string]interface{}{
			"stock": newStock,
			"sales": newSales,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (g *Goods) ListTypes(ctx context.Context) ([]*models.GoodsType, error) {
	var ts []*models.GoodsType
	err := g.Db.WithContext(ctx).Find(&ts).Error
	return ts, err
}

func (g *Goods) GetType(ctx context.Context, typeID uint64) (*models.GoodsType, error) {
	var t models.GoodsType
	err := g.Db.WithContext(ctx).Where("id = ?", typeID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByTypeCursor 分类商品列表，游标为上一页最后一条的 ID
// sort: price 价格升序 / hot 销量倒序 / 默认 ID 倒序
func (g *Goods) ListByTypeCursor(ctx context.Context, typeID uint64, sort string, cursor int64, limit int) ([]*models.GoodsSKU, error) {
	query := g.Db.WithContext(ctx).Where("type_id = ? AND status = 1", typeID)

	switch sort {
	case "price":
		query = query.Order("price asc, id desc")
	case "hot":
		query = query.Order("sales desc, id desc")
	default:
		if cursor > 0 {
			query = query.Where("id < ?", cursor)
		}
		query = query.Order("id desc")
	}

	var skus []*models.GoodsSKU
	err := query.Limit(limit).Find(&skus).Error
	return skus, err
}

// NewestByType 同类新品推荐
func (g *Goods) NewestByType(ctx context.Context, typeID uint64, limit int) ([]*models.GoodsSKU, error) {
	var skus []*models.GoodsSKU
	err := g.Db.WithContext(ctx).
		Where("type_id = ? AND status = 1", typeID).
		Order("created_at desc").
		Limit(limit).
		Find(&skus).Error
	return skus, err
}

// Newest 全站新品（首页用）
func (g *Goods) Newest(ctx context.Context, limit int) ([]*models.GoodsSKU, error) {
	var skus []*models.GoodsSKU
	err := g.Db.WithContext(ctx).
		Where("status = 1").
		Order("created_at desc").
		Limit(limit).
		Find(&skus).Error
	return skus, err
}

// SameSpuSKUs 同一 SPU 下的其他规格
func (g *Goods) SameSpuSKUs(ctx context.Context, spuID, excludeID uint64) ([]*models.GoodsSKU, error) {
	var skus []*models.GoodsSKU
	err := g.Db.WithContext(ctx).
		Where("spu_id = ? AND id <> ? AND status = 1", spuID, excludeID).
		Find(&skus).Error
	return skus, err
}

func (g *Goods) CreateSKU(ctx context.Context, sku *models.GoodsSKU) error {
	return g.Db.WithContext(ctx).Create(sku).Error
}
