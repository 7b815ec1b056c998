package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"FreshMall/models"
	"FreshMall/pkg/gateway"

	"github.com/stretchr/testify/assert"
)

func newPaymentService(orders *fakeOrderFinder, gw *fakeGateway) *PaymentService {
	return &PaymentService{
		Orders:       orders,
		Gateway:      gw,
		pollInterval: time.Millisecond,
		pollAttempts: 5,
	}
}

func unpaidOrder(sn string, uid uint64) *fakeOrderFinder {
	return &fakeOrderFinder{orders: map[string]*models.OrderInfo{
		sn: {OrderSn: sn, UserID: uid, Status: models.OrderStatusUnpaid, TotalPrice: 5000, TransitPrice: 1000},
	}}
}

func TestPay_ReturnsCashierURL(t *testing.T) {
	orders := unpaidOrder("2026010112000042", 42)
	svc := newPaymentService(orders, &fakeGateway{})

	resp, err := svc.Pay(context.Background(), 42, "2026010112000042")
	assert.NoError(t, err)
	assert.Contains(t, resp.PayURL, "2026010112000042")
}

func TestPay_WrongUser(t *testing.T) {
	orders := unpaidOrder("2026010112000042", 42)
	svc := newPaymentService(orders, &fakeGateway{})

	_, err := svc.Pay(context.Background(), 7, "2026010112000042")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestPay_AlreadyPaid(t *testing.T) {
	orders := unpaidOrder("2026010112000042", 42)
	orders.orders["2026010112000042"].Status = models.OrderStatusUnrated
	svc := newPaymentService(orders, &fakeGateway{})

	_, err := svc.Pay(context.Background(), 42, "2026010112000042")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCheck_PendingThenSuccess(t *testing.T) {
	orders := unpaidOrder("2026010112000042", 42)
	gw := &fakeGateway{results: []*gateway.TradeResult{
		{State: gateway.TradePending},
		{State: gateway.TradePending},
		{State: gateway.TradeSuccess, TransactionID: "4200001"},
	}}
	svc := newPaymentService(orders, gw)

	resp, err := svc.Check(context.Background(), 42, "2026010112000042")
	assert.NoError(t, err)
	assert.True(t, resp.Paid)
	assert.Equal(t, "4200001", resp.TradeNo)
	assert.Equal(t, 3, gw.calls)

	// 确认成功后订单推进到待评价，并落一条支付流水
	assert.Equal(t, 1, orders.markPaidCalls)
	assert.Equal(t, models.OrderStatusUnrated, orders.orders["2026010112000042"].Status)
	if assert.Len(t, orders.payRecords, 1) {
		rec := orders.payRecords[0]
		assert.Equal(t, "4200001", rec.TransactionId)
		assert.Equal(t, uint64(6000), rec.AmountTotal)
	}
}

func TestCheck_AlreadyConfirmed(t *testing.T) {
	// 已确认的订单不再查网关
	orders := unpaidOrder("2026010112000042", 42)
	orders.orders["2026010112000042"].Status = models.OrderStatusUnrated
	orders.orders["2026010112000042"].TradeNo = "4200001"
	gw := &fakeGateway{}
	svc := newPaymentService(orders, gw)

	resp, err := svc.Check(context.Background(), 42, "2026010112000042")
	assert.NoError(t, err)
	assert.True(t, resp.Paid)
	assert.Equal(t, "4200001", resp.TradeNo)
	assert.Zero(t, gw.calls)
}

func TestCheck_Exhausted(t *testing.T) {
	// 次数耗尽：订单保持待支付，随后可以重新发起查询
	orders := unpaidOrder("2026010112000042", 42)
	gw := &fakeGateway{results: []*gateway.TradeResult{{State: gateway.TradePending}}}
	svc := newPaymentService(orders, gw)

	resp, err := svc.Check(context.Background(), 42, "2026010112000042")
	assert.NoError(t, err)
	assert.False(t, resp.Paid)
	assert.NotEmpty(t, resp.Msg)
	assert.Equal(t, svc.pollAttempts, gw.calls)

	assert.Zero(t, orders.markPaidCalls)
	assert.Equal(t, models.OrderStatusUnpaid, orders.orders["2026010112000042"].Status)
}

func TestCheck_TradeClosed(t *testing.T) {
	orders := unpaidOrder("2026010112000042", 42)
	gw := &fakeGateway{results: []*gateway.TradeResult{{State: gateway.TradeClosed}}}
	svc := newPaymentService(orders, gw)

	resp, err := svc.Check(context.Background(), 42, "2026010112000042")
	assert.NoError(t, err)
	assert.False(t, resp.Paid)
	assert.Zero(t, orders.markPaidCalls)
}

func TestCheck_GatewayErrorsTolerated(t *testing.T) {
	// 网关瞬时报错不终止轮询，也不影响订单状态
	orders := unpaidOrder("2026010112000042", 42)
	gw := &fakeGateway{
		errs:    []error{errors.New("gateway 502"), nil},
		results: []*gateway.TradeResult{nil, {State: gateway.TradeSuccess, TransactionID: "4200001"}},
	}
	svc := newPaymentService(orders, gw)

	resp, err := svc.Check(context.Background(), 42, "2026010112000042")
	assert.NoError(t, err)
	assert.True(t, resp.Paid)
	assert.Equal(t, 2, gw.calls)
}

func TestCheck_ContextCancelled(t *testing.T) {
	orders := unpaidOrder("2026010112000042", 42)
	gw := &fakeGateway{results: []*gateway.TradeResult{{State: gateway.TradePending}}}
	svc := newPaymentService(orders, gw)
	svc.pollInterval = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := svc.Check(ctx, 42, "2026010112000042")
	assert.ErrorIs(t, err, context.Canceled)
	// 取消立刻生效，不会等完整个轮询间隔
	assert.Less(t, time.Since(start), time.Second)
	assert.Zero(t, orders.markPaidCalls)
}

func TestCheck_UnknownOrder(t *testing.T) {
	svc := newPaymentService(&fakeOrderFinder{orders: map[string]*models.OrderInfo{}}, &fakeGateway{})

	_, err := svc.Check(context.Background(), 42, "nope")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
