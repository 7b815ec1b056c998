package types

import (
	"time"

	"FreshMall/models"
)

// PlaceOrderRequest 从购物车勾选商品进入结算页
type PlaceOrderRequest struct {
	SkuIDs []uint64 `json:"sku_ids" binding:"required"`
}

// OrderLineView 订单/结算页商品行
type OrderLineView struct {
	SkuID      uint64 `json:"sku_id"`
	SkuName    string `json:"sku_name"`
	Unite      string `json:"unite"`
	CoverImage string `json:"cover_image"`
	Price      uint32 `json:"price"` // 成交单价（分）
	Count      uint32 `json:"count"`
	Amount     uint64 `json:"amount"` // 小计（分）
	Comment    string `json:"comment,omitempty"`
}

// PlaceOrderResponse 结算页数据
type PlaceOrderResponse struct {
	Lines        []*OrderLineView  `json:"lines"`
	TotalCount   uint32            `json:"total_count"`
	TotalPrice   uint64            `json:"total_price"`
	TransitPrice uint64            `json:"transit_price"`
	TotalPay     uint64            `json:"total_pay"` // 实付款 = 总价 + 运费
	Addrs        []*models.Address `json:"addrs"`
	SkuIDs       string            `json:"sku_ids"` // 逗号拼接，提交订单时原样带回
}

// CommitOrderRequest 提交订单
type CommitOrderRequest struct {
	AddrID    uint64 `json:"addr_id" binding:"required"`
	PayMethod int8   `json:"pay_method" binding:"required"`
	SkuIDs    string `json:"sku_ids" binding:"required"` // 1,3,5
}

type CommitOrderResponse struct {
	OrderSn string `json:"order_sn"`
}

// PayOrderRequest 发起支付
type PayOrderRequest struct {
	OrderSn string `json:"order_sn" binding:"required"`
}

type PayOrderResponse struct {
	PayURL string `json:"pay_url"`
}

// CheckPayRequest 查询支付结果
type CheckPayRequest struct {
	OrderSn string `json:"order_sn" binding:"required"`
}

type CheckPayResponse struct {
	Paid    bool   `json:"paid"`
	TradeNo string `json:"trade_no,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// OrderCommentItem 单个商品的评价
type OrderCommentItem struct {
	SkuID   uint64 `json:"sku_id" binding:"required"`
	Content string `json:"content"`
}

// CommentOrderRequest 订单评价
type CommentOrderRequest struct {
	OrderSn  string             `json:"order_sn" binding:"required"`
	Comments []OrderCommentItem `json:"comments" binding:"required"`
}

// OrderView 订单列表/详情展示
type OrderView struct {
	OrderSn      string           `json:"order_sn"`
	Status       int8             `json:"status"`
	StatusName   string           `json:"status_name"`
	PayMethod    int8             `json:"pay_method"`
	TotalCount   uint32           `json:"total_count"`
	TotalPrice   uint64           `json:"total_price"`
	TransitPrice uint64           `json:"transit_price"`
	TotalPay     uint64           `json:"total_pay"`
	TradeNo      string           `json:"trade_no,omitempty"`
	Created      time.Time        `json:"created_at"`
	Lines        []*OrderLineView `json:"lines"`
}

// OrderListResponse 游标分页的订单列表
type OrderListResponse struct {
	Orders     []*OrderView `json:"orders"`
	NextCursor int64        `json:"next_cursor"`
	HasMore    bool         `json:"has_more"`
}
