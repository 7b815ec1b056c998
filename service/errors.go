package service

import (
	"FreshMall/pkg/response"
)

// 业务错误统一为 BizError，handler 层经 context.Wrap 直接转成响应码
var (
	ErrIncompleteData      = response.NewError(response.CodeIncompleteData, "数据不完整")
	ErrInvalidQuantity     = response.NewError(response.CodeInvalidQuantity, "商品数目出错")
	ErrSkuNotFound         = response.NewError(response.CodeSkuNotFound, "商品不存在")
	ErrInsufficientStock   = response.NewError(response.CodeInsufficientStock, "商品库存不足")
	ErrInvalidPayMethod    = response.NewError(response.CodeInvalidPayMethod, "非法的支付方式")
	ErrInvalidAddress      = response.NewError(response.CodeInvalidAddress, "地址非法")
	ErrCartEntryMissing    = response.NewError(response.CodeCartEntryMissing, "购物车中无此商品")
	ErrContentionExhausted = response.NewError(response.CodeContentionExhausted, "下单冲突，请重新提交")
	ErrOrderNotFound       = response.NewError(response.CodeOrderNotFound, "订单错误")
)
