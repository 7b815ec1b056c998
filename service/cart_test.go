package service

import (
	"context"
	"testing"

	"FreshMall/models"

	"github.com/stretchr/testify/assert"
)

func newCartService(skus ...*models.GoodsSKU) (*CartService, *fakeCartStore) {
	store := newFakeCartStore()
	return &CartService{Cart: store, Goods: newFakeSKUReader(skus...)}, store
}

func TestCartAdd_Accumulates(t *testing.T) {
	svc, store := newCartService(&models.GoodsSKU{ID: 7, SkuName: "草莓", Price: 800, Stock: 10})
	ctx := context.Background()

	total, err := svc.Add(ctx, 1, 7, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// 同一 sku 再次添加是数量累加
	total, err = svc.Add(ctx, 1, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, uint32(5), store.carts[1][7])
}

func TestCartAdd_ZeroCount(t *testing.T) {
	svc, _ := newCartService(&models.GoodsSKU{ID: 7, Stock: 10})

	_, err := svc.Add(context.Background(), 1, 7, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartAdd_UnknownSku(t *testing.T) {
	svc, _ := newCartService()

	_, err := svc.Add(context.Background(), 1, 999, 1)
	assert.ErrorIs(t, err, ErrSkuNotFound)
}

func TestCartAdd_OverStock(t *testing.T) {
	svc, store := newCartService(&models.GoodsSKU{ID: 7, Stock: 5})
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 4)
	assert.NoError(t, err)

	// 累加后超出库存被拒，已有数量不动
	_, err = svc.Add(ctx, 1, 7, 2)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, uint32(4), store.carts[1][7])
}

func TestCartUpdate_Overwrites(t *testing.T) {
	svc, store := newCartService(&models.GoodsSKU{ID: 7, Stock: 10})
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 2)
	assert.NoError(t, err)

	// Update 是覆盖写，重复提交幂等
	_, err = svc.Update(ctx, 1, 7, 6)
	assert.NoError(t, err)
	_, err = svc.Update(ctx, 1, 7, 6)
	assert.NoError(t, err)
	assert.Equal(t, uint32(6), store.carts[1][7])
}

func TestCartRemove_Idempotent(t *testing.T) {
	svc, _ := newCartService(&models.GoodsSKU{ID: 7, Stock: 10})
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 2)
	assert.NoError(t, err)

	total, err := svc.Remove(ctx, 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)

	// 条目已不存在，再删一次同样成功
	total, err = svc.Remove(ctx, 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestCartList_Totals(t *testing.T) {
	svc, _ := newCartService(
		&models.GoodsSKU{ID: 1, SkuName: "草莓", Price: 800, Stock: 10},
		&models.GoodsSKU{ID: 2, SkuName: "牛奶", Price: 350, Stock: 20},
	)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 1, 2)
	assert.NoError(t, err)
	_, err = svc.Add(ctx, 1, 2, 3)
	assert.NoError(t, err)

	resp, err := svc.List(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, resp.Lines, 2)
	assert.Equal(t, uint32(5), resp.TotalCount)
	assert.Equal(t, uint64(2*800+3*350), resp.TotalPrice)
	assert.Equal(t, uint64(1600), resp.Lines[0].Amount)
}

func TestCartList_Empty(t *testing.T) {
	svc, _ := newCartService()

	resp, err := svc.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, resp.Lines)
	assert.Zero(t, resp.TotalPrice)
}

// 不同用户的购物车互不可见
func TestCart_IsolatedByUser(t *testing.T) {
	svc, _ := newCartService(&models.GoodsSKU{ID: 7, Stock: 10})
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 2)
	assert.NoError(t, err)

	count, err := svc.Count(ctx, 2)
	assert.NoError(t, err)
	assert.Zero(t, count)
}
