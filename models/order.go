package models

import (
	"time"

	"gorm.io/datatypes"
)

// 订单状态机
// 1 待支付 -> 4 待评价（支付确认后） -> 5 已完成（评价提交后）
// 2、3 留给发货/收货流转，当前由运营后台推进
const (
	OrderStatusUnpaid    int8 = 1 // 待支付
	OrderStatusUnshipped int8 = 2 // 待发货
	OrderStatusShipped   int8 = 3 // 待收货
	OrderStatusUnrated   int8 = 4 // 待评价
	OrderStatusFinished  int8 = 5 // 已完成
)

// 支付方式
const (
	PayMethodCOD    int8 = 1 // 货到付款
	PayMethodWechat int8 = 2 // 微信支付
	PayMethodAlipay int8 = 3 // 支付宝
	PayMethodUnion  int8 = 4 // 银联支付
)

// ValidPayMethod 支付方式合法性校验
func ValidPayMethod(m int8) bool {
	return m >= PayMethodCOD && m <= PayMethodUnion
}

// OrderStatusName 订单状态标题（展示用）
func OrderStatusName(status int8) string {
	switch status {
	case OrderStatusUnpaid:
		return "待支付"
	case OrderStatusUnshipped:
		return "待发货"
	case OrderStatusShipped:
		return "待收货"
	case OrderStatusUnrated:
		return "待评价"
	case OrderStatusFinished:
		return "已完成"
	}
	return "未知状态"
}

// OrderInfo 订单主表
type OrderInfo struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderSn      string     `gorm:"column:order_sn;type:varchar(32);not null;uniqueIndex:idx_order_sn" json:"order_sn"` // OrderSn: 时间戳+用户ID，全局唯一
	UserID       uint64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	AddrID       uint64     `gorm:"column:addr_id;not null" json:"addr_id"`
	PayMethod    int8       `gorm:"column:pay_method;not null" json:"pay_method"`
	TotalCount   uint32     `gorm:"column:total_count;not null;default:0" json:"total_count"`     // TotalCount: 商品总件数
	TotalPrice   uint64     `gorm:"column:total_price;not null;default:0" json:"total_price"`     // TotalPrice: 商品总金额（分），不含运费
	TransitPrice uint64     `gorm:"column:transit_price;not null;default:0" json:"transit_price"` // TransitPrice: 运费（分）
	Status       int8       `gorm:"column:status;not null;default:1" json:"status"`               // Status: 见 OrderStatus* 常量
	TradeNo      string     `gorm:"column:trade_no;type:varchar(64);default:''" json:"trade_no"`  // TradeNo: 支付平台交易号，支付确认后回填
	PaidAt       *time.Time `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderInfo) TableName() string {
	return "order_info"
}

// OrderGoods 订单商品明细
// 单价为下单时点的快照，商品后续调价不影响历史订单
type OrderGoods struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   uint64    `gorm:"not null;index:idx_order_id;column:order_id" json:"order_id"` // OrderID: 所属订单
	SkuID     uint64    `gorm:"not null;index:idx_sku_id;column:sku_id" json:"sku_id"`       // SkuID: 商品SKU（仅引用，非外键所有权）
	Count     uint32    `gorm:"default:1;not null;column:count" json:"count"`                // Count: 购买数量
	Price     uint32    `gorm:"not null;column:price" json:"price"`                          // Price: 冗余下单单价（分），锁定成交价
	Comment   string    `gorm:"type:text;column:comment" json:"comment"`                     // Comment: 收货后的商品评价
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderGoods) TableName() string {
	return "order_goods"
}

// PayRecord 支付流水记录表
type PayRecord struct {
	ID            uint64         `gorm:"primaryKey" json:"id"` // ID: 雪花ID，由应用侧生成
	OrderSn       string         `gorm:"column:order_sn;type:varchar(32);not null;uniqueIndex:idx_order_sn" json:"order_sn"`
	PayPlatform   int8           `gorm:"column:pay_platform;not null;default:1" json:"pay_platform"` // PayPlatform: 同 PayMethod* 常量
	TransactionId string         `gorm:"column:transaction_id;type:varchar(64);index:idx_transaction_id" json:"transaction_id"`
	AmountTotal   uint64         `gorm:"column:amount_total;not null;default:0" json:"amount_total"`
	PayStatus     int8           `gorm:"column:pay_status;not null;default:0" json:"pay_status"`
	RawTradeState string         `gorm:"column:raw_trade_state;type:varchar(32)" json:"raw_trade_state"`
	NotifyRaw     datatypes.JSON `gorm:"column:notify_raw" json:"notify_raw"` // 网关回执原文
	FinishedAt    *time.Time     `gorm:"column:finished_at" json:"finished_at"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PayRecord) TableName() string {
	return "pay_records"
}
