package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"FreshMall/config"
	"FreshMall/dao"
	"FreshMall/models"
	"FreshMall/pkg/gateway"
	"FreshMall/pkg/log"
	"FreshMall/types"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 支付结果轮询默认参数：1 秒间隔，最多 120 次
const (
	defaultPollInterval = time.Second
	defaultPollAttempts = 120
)

// OrderFinder 对账需要的订单读写
type OrderFinder interface {
	GetBySn(ctx context.Context, orderSn string, userID uint64) (*models.OrderInfo, error)
	MarkPaid(ctx context.Context, orderSn, tradeNo string) (bool, error)
	CreatePayRecord(ctx context.Context, rec *models.PayRecord) error
}

type PaymentService struct {
	Orders  OrderFinder
	Gateway gateway.Gateway

	pollInterval time.Duration
	pollAttempts int
}

var _ IPaymentService = (*PaymentService)(nil)

type IPaymentService interface {
	Pay(ctx context.Context, uid uint64, orderSn string) (*types.PayOrderResponse, error)
	Check(ctx context.Context, uid uint64, orderSn string) (*types.CheckPayResponse, error)
}

func NewPaymentService(cfg *config.Config, orderDAO *dao.Order, gw gateway.Gateway) *PaymentService {
	s := &PaymentService{
		Orders:       orderDAO,
		Gateway:      gw,
		pollInterval: defaultPollInterval,
		pollAttempts: defaultPollAttempts,
	}
	if pc := cfg.WechatPayConfig; pc != nil {
		if pc.PollInterval > 0 {
			s.pollInterval = time.Duration(pc.PollInterval) * time.Second
		}
		if pc.PollAttempts > 0 {
			s.pollAttempts = pc.PollAttempts
		}
	}
	return s
}

// Pay 为待支付订单发起网关预下单，返回收银台地址
func (s *PaymentService) Pay(ctx context.Context, uid uint64, orderSn string) (*types.PayOrderResponse, error) {
	order, err := s.Orders.GetBySn(ctx, orderSn, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Status != models.OrderStatusUnpaid {
		return nil, ErrOrderNotFound
	}

	// 实付款 = 商品总价 + 运费
	amount := order.TotalPrice + order.TransitPrice
	payURL, err := s.Gateway.Prepay(ctx, orderSn, amount, fmt.Sprintf("FreshMall 订单 %s", orderSn))
	if err != nil {
		return nil, err
	}

	return &types.PayOrderResponse{PayURL: payURL}, nil
}

// Check 支付结果对账
// 固定间隔轮询网关直到成功/次数耗尽/ctx 取消。
// 轮询只改订单状态，不碰库存——库存在下单事务里已经扣掉了。
// 次数耗尽不改任何状态，订单保持待支付，可以再次发起查询
func (s *PaymentService) Check(ctx context.Context, uid uint64, orderSn string) (*types.CheckPayResponse, error) {
	order, err := s.Orders.GetBySn(ctx, orderSn, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	// 已经确认过的订单直接返回
	if order.Status != models.OrderStatusUnpaid {
		return &types.CheckPayResponse{Paid: true, TradeNo: order.TradeNo}, nil
	}

	for i := 0; i < s.pollAttempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.pollInterval):
			}
		}

		result, err := s.Gateway.QueryTrade(ctx, orderSn)
		if err != nil {
			// 网关瞬时不可达按未确认处理，继续轮询，不影响订单和库存
			log.L.Warn("query trade from gateway",
				zap.String("order_sn", orderSn),
				zap.Error(err))
			continue
		}

		switch result.State {
		case gateway.TradeSuccess:
			if _, err := s.Orders.MarkPaid(ctx, orderSn, result.TransactionID); err != nil {
				return nil, err
			}
			s.recordPayment(ctx, order, result)
			return &types.CheckPayResponse{Paid: true, TradeNo: result.TransactionID}, nil
		case gateway.TradeClosed:
			return &types.CheckPayResponse{Paid: false, Msg: "交易已关闭"}, nil
		}
		// TradePending 继续轮询
	}

	return &types.CheckPayResponse{Paid: false, Msg: "支付超时，请手动重新查询"}, nil
}

// recordPayment 确认成功后落支付流水
// 流水是审计数据，写失败不影响订单状态，只记日志
func (s *PaymentService) recordPayment(ctx context.Context, order *models.OrderInfo, result *gateway.TradeResult) {
	raw, _ := json.Marshal(result)
	now := time.Now()
	rec := &models.PayRecord{
		OrderSn:       order.OrderSn,
		PayPlatform:   order.PayMethod,
		TransactionId: result.TransactionID,
		AmountTotal:   order.TotalPrice + order.TransitPrice,
		PayStatus:     1,
		RawTradeState: result.RawState,
		NotifyRaw:     datatypes.JSON(raw),
		FinishedAt:    &now,
	}
	if err := s.Orders.CreatePayRecord(ctx, rec); err != nil {
		log.L.Warn("create pay record",
			zap.String("order_sn", order.OrderSn),
			zap.Error(err))
	}
}
