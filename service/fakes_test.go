package service

import (
	"context"
	"sort"

	"FreshMall/models"
	"FreshMall/pkg/gateway"

	"gorm.io/gorm"
)

// fakeCartStore 内存版购物车存储
type fakeCartStore struct {
	carts map[uint64]map[uint64]uint32

	deleted [][]uint64 // Del 的调用轨迹
}

var _ CartStore = (*fakeCartStore)(nil)

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[uint64]map[uint64]uint32)}
}

func (f *fakeCartStore) Get(ctx context.Context, uid, skuID uint64) (uint32, bool, error) {
	count, ok := f.carts[uid][skuID]
	return count, ok, nil
}

func (f *fakeCartStore) Set(ctx context.Context, uid, skuID uint64, count uint32) error {
	if f.carts[uid] == nil {
		f.carts[uid] = make(map[uint64]uint32)
	}
	f.carts[uid][skuID] = count
	return nil
}

func (f *fakeCartStore) Del(ctx context.Context, uid uint64, skuIDs ...uint64) error {
	f.deleted = append(f.deleted, skuIDs)
	for _, id := range skuIDs {
		delete(f.carts[uid], id)
	}
	return nil
}

func (f *fakeCartStore) All(ctx context.Context, uid uint64) (map[uint64]uint32, error) {
	out := make(map[uint64]uint32, len(f.carts[uid]))
	for k, v := range f.carts[uid] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeCartStore) Count(ctx context.Context, uid uint64) (int64, error) {
	return int64(len(f.carts[uid])), nil
}

// fakeSKUReader 内存版商品查询
type fakeSKUReader struct {
	skus map[uint64]*models.GoodsSKU
}

var _ SKUReader = (*fakeSKUReader)(nil)

func newFakeSKUReader(skus ...*models.GoodsSKU) *fakeSKUReader {
	f := &fakeSKUReader{skus: make(map[uint64]*models.GoodsSKU)}
	for _, sku := range skus {
		f.skus[sku.ID] = sku
	}
	return f
}

func (f *fakeSKUReader) GetSKU(ctx context.Context, skuID uint64) (*models.GoodsSKU, error) {
	sku, ok := f.skus[skuID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sku, nil
}

func (f *fakeSKUReader) GetSKUs(ctx context.Context, skuIDs []uint64) ([]*models.GoodsSKU, error) {
	out := make([]*models.GoodsSKU, 0, len(skuIDs))
	for _, id := range skuIDs {
		if sku, ok := f.skus[id]; ok {
			out = append(out, sku)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeOrderFinder 内存版订单读写（对账用）
type fakeOrderFinder struct {
	orders map[string]*models.OrderInfo

	markPaidCalls int
	payRecords    []*models.PayRecord
}

var _ OrderFinder = (*fakeOrderFinder)(nil)

func (f *fakeOrderFinder) GetBySn(ctx context.Context, orderSn string, userID uint64) (*models.OrderInfo, error) {
	order, ok := f.orders[orderSn]
	if !ok || order.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderFinder) MarkPaid(ctx context.Context, orderSn, tradeNo string) (bool, error) {
	f.markPaidCalls++
	order, ok := f.orders[orderSn]
	if !ok || order.Status != models.OrderStatusUnpaid {
		return false, nil
	}
	order.Status = models.OrderStatusUnrated
	order.TradeNo = tradeNo
	return true, nil
}

func (f *fakeOrderFinder) CreatePayRecord(ctx context.Context, rec *models.PayRecord) error {
	f.payRecords = append(f.payRecords, rec)
	return nil
}

// fakeGateway 按脚本回放交易状态
type fakeGateway struct {
	results []*gateway.TradeResult
	errs    []error
	calls   int
}

var _ gateway.Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) Prepay(ctx context.Context, outTradeNo string, amount uint64, description string) (string, error) {
	return "weixin://wxpay/bizpayurl?pr=" + outTradeNo, nil
}

func (f *fakeGateway) QueryTrade(ctx context.Context, outTradeNo string) (*gateway.TradeResult, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.results) {
		return f.results[i], nil
	}
	// 脚本走完后保持最后一个状态
	return f.results[len(f.results)-1], nil
}
