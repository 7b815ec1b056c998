package models

import (
	"time"

	"gorm.io/gorm"
)

// GoodsType 商品种类（生鲜分类）
type GoodsType struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	TypeName  string         `gorm:"size:64;not null;uniqueIndex:idx_type_name;column:type_name" json:"type_name"` // TypeName: 种类名称
	Logo      string         `gorm:"size:64;default:'';column:logo" json:"logo"`                                   // Logo: 标识
	Image     string         `gorm:"size:512;default:'';column:image" json:"image"`                                // Image: 种类图片 URL
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index:idx_goods_type_deleted_at;column:deleted_at" json:"-"`
}

func (GoodsType) TableName() string {
	return "goods_type"
}

// GoodsSPU 商品 SPU，一个 SPU 下可以挂多个不同规格的 SKU
type GoodsSPU struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SpuName   string         `gorm:"size:128;not null;uniqueIndex:idx_spu_name;column:spu_name" json:"spu_name"` // SpuName: 商品名称
	Detail    string         `gorm:"type:text;column:detail" json:"detail"`                                      // Detail: 商品详情
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index:idx_goods_spu_deleted_at;column:deleted_at" json:"-"`
}

func (GoodsSPU) TableName() string {
	return "goods_spu"
}

// GoodsSKU 具体可购买的商品规格
// 库存（stock）与销量（sales）只允许订单提交事务通过条件更新修改，
// 其余路径一律只读，避免并发下单时的丢失更新
type GoodsSKU struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SpuID      uint64         `gorm:"not null;index:idx_spu_id;column:spu_id" json:"spu_id"`       // SpuID: 所属 SPU
	TypeID     uint64         `gorm:"not null;index:idx_type_id;column:type_id" json:"type_id"`    // TypeID: 所属种类
	SkuName    string         `gorm:"size:128;not null;column:sku_name" json:"sku_name"`           // SkuName: 商品名称
	Unite      string         `gorm:"size:32;default:'';column:unite" json:"unite"`                // Unite: 销售单位（500g/盒...）
	Price      uint32         `gorm:"not null;column:price" json:"price"`                          // Price: 价格（单位：分）
	Stock      uint32         `gorm:"default:0;not null;column:stock" json:"stock"`                // Stock: 库存数量
	Sales      uint32         `gorm:"default:0;not null;column:sales" json:"sales"`                // Sales: 销量
	Brief      string         `gorm:"size:256;default:'';column:brief" json:"brief"`               // Brief: 简介
	CoverImage string         `gorm:"size:512;default:'';column:cover_image" json:"cover_image"`   // CoverImage: 封面图 URL
	Status     int8           `gorm:"default:1;not null;index:idx_status;column:status" json:"status"` // Status: 状态 (0-下架, 1-上架)
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index:idx_goods_sku_deleted_at;column:deleted_at" json:"-"`
}

func (GoodsSKU) TableName() string {
	return "goods_sku"
}
