package gateway

import (
	"context"
	"fmt"

	"FreshMall/config"
	"FreshMall/pkg/log"

	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
	"go.uber.org/zap"
)

// WechatGateway 微信支付 Native 下单实现
type WechatGateway struct {
	cfg    *config.WechatPayConfig
	client *core.Client
}

var _ Gateway = (*WechatGateway)(nil)

func NewWechatGateway(cfg *config.WechatPayConfig) *WechatGateway {
	g := &WechatGateway{cfg: cfg}
	if err := g.initClient(); err != nil {
		log.L.Fatal("init wechat pay client", zap.Error(err))
	}
	return g
}

// initClient 初始化微信支付客户端（只执行一次）
func (g *WechatGateway) initClient() error {
	// 1. 加载商户私钥
	mchPrivateKey, err := utils.LoadPrivateKeyWithPath(g.cfg.MchPrivateKeyPath)
	if err != nil {
		return fmt.Errorf("加载商户私钥失败: %w", err)
	}

	// 2. 创建微信支付客户端
	opts := []core.ClientOption{
		option.WithWechatPayAutoAuthCipher(
			g.cfg.MchID,
			g.cfg.MchCertificateSerialNumber,
			mchPrivateKey,
			g.cfg.MchAPIv3Key,
		),
	}

	client, err := core.NewClient(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("创建微信支付客户端失败: %w", err)
	}

	g.client = client
	return nil
}

func (g *WechatGateway) Prepay(ctx context.Context, outTradeNo string, amount uint64, description string) (string, error) {
	svc := native.NativeApiService{Client: g.client}
	resp, _, err := svc.Prepay(ctx, native.PrepayRequest{
		Appid:       core.String(g.cfg.AppID),
		Mchid:       core.String(g.cfg.MchID),
		Description: core.String(description),
		OutTradeNo:  core.String(outTradeNo),
		NotifyUrl:   core.String(g.cfg.NotifyURL),
		Amount: &native.Amount{
			Total: core.Int64(int64(amount)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("微信下单失败: %w", err)
	}

	return *resp.CodeUrl, nil
}

func (g *WechatGateway) QueryTrade(ctx context.Context, outTradeNo string) (*TradeResult, error) {
	svc := native.NativeApiService{Client: g.client}
	transaction, _, err := svc.QueryOrderByOutTradeNo(ctx, native.QueryOrderByOutTradeNoRequest{
		OutTradeNo: core.String(outTradeNo),
		Mchid:      core.String(g.cfg.MchID),
	})
	if err != nil {
		return nil, err
	}

	res := &TradeResult{State: TradePending}
	if transaction.TradeState != nil {
		res.RawState = *transaction.TradeState
	}
	switch res.RawState {
	case "SUCCESS":
		res.State = TradeSuccess
		if transaction.TransactionId != nil {
			res.TransactionID = *transaction.TransactionId
		}
	case "CLOSED", "REVOKED", "PAYERROR":
		res.State = TradeClosed
	}

	return res, nil
}
