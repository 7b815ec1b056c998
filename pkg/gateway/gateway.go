package gateway

import "context"

// TradeState 网关侧交易状态归一
type TradeState int8

const (
	TradePending TradeState = iota // 未支付/支付中
	TradeSuccess                   // 支付成功
	TradeClosed                    // 已关闭/已撤销
)

// TradeResult 查询网关得到的交易结果
type TradeResult struct {
	State         TradeState
	TransactionID string // 网关交易号，成功时非空
	RawState      string // 网关原始状态码，落流水用
}

// Gateway 第三方支付网关抽象
// 签名、证书等细节由具体实现承担，订单链路只关心商户单号维度的下单和查询
type Gateway interface {
	// Prepay 以商户订单号发起预支付，返回收银台跳转地址
	Prepay(ctx context.Context, outTradeNo string, amount uint64, description string) (string, error)
	// QueryTrade 查询商户订单号对应的交易结果
	QueryTrade(ctx context.Context, outTradeNo string) (*TradeResult, error)
}
