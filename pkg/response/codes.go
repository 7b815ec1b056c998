package response

// 业务结果码
// 购物车/订单接口统一使用，前端据此决定提示与重试策略
const (
	CodeOK = 0

	CodeNotAuthenticated = 10001 // 未登录
	CodeIncompleteData   = 10002 // 数据不完整
	CodeInvalidQuantity  = 10003 // 商品数目出错
	CodeSkuNotFound      = 10004 // 商品不存在
	CodeInsufficientStock = 10005 // 库存不足（重新提交也无济于事，除非补货）
	CodeInvalidPayMethod  = 10006 // 非法的支付方式
	CodeInvalidAddress    = 10007 // 地址非法
	CodeCartEntryMissing  = 10008 // 购物车中无此商品
	CodeContentionExhausted = 10009 // 下单冲突重试耗尽（可立即重试）
	CodeOrderNotFound       = 10010 // 订单不存在
	CodePayPending          = 10011 // 支付结果未确认

	CodeServerError = 500
)
