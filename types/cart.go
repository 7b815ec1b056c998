package types

// CartMutateRequest 购物车添加/更新/删除的公共请求体
type CartMutateRequest struct {
	SkuID uint64 `json:"sku_id" binding:"required"`
	Count uint32 `json:"count"`
}

// CartLine 购物车展示行（小计等展示字段放 DTO，不回写领域对象）
type CartLine struct {
	SkuID      uint64 `json:"sku_id"`
	SkuName    string `json:"sku_name"`
	Unite      string `json:"unite"`
	CoverImage string `json:"cover_image"`
	Price      uint32 `json:"price"`
	Count      uint32 `json:"count"`
	Amount     uint64 `json:"amount"` // 小计（分）
	Stock      uint32 `json:"stock"`
}

type CartInfoResponse struct {
	Lines      []*CartLine `json:"lines"`
	TotalCount uint32      `json:"total_count"` // 商品总件数
	TotalPrice uint64      `json:"total_price"` // 商品总价（分）
}

// CartMutateResponse 所有购物车变更接口统一返回条目数
type CartMutateResponse struct {
	TotalCount int64 `json:"total_count"` // 购物车中不同商品的条目数
}
