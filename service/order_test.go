package service

import (
	"context"
	"strings"
	"testing"

	"FreshMall/config"
	"FreshMall/dao"
	"FreshMall/models"
	"FreshMall/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func newOrderService(db *gorm.DB, store *fakeCartStore) *OrderService {
	return &OrderService{
		Config:     &config.Config{Order: &config.Order{TransitPrice: 1000}},
		DB:         db,
		Cart:       store,
		GoodsDAO:   dao.NewGoods(db),
		OrderDAO:   dao.NewOrder(db),
		AddressDAO: dao.NewAddress(db),
	}
}

func expectAddress(mock sqlmock.Sqlmock, addrID, uid uint64) {
	mock.ExpectQuery("SELECT (.+) FROM `address`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(addrID, uid))
}

func TestCommit_Success(t *testing.T) {
	db, mock := newMockDB(t)
	store := newFakeCartStore()
	require.NoError(t, store.Set(context.Background(), 42, 1, 2))
	require.NoError(t, store.Set(context.Background(), 42, 2, 3))
	svc := newOrderService(db, store)

	expectAddress(mock, 3, 42)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `order_info`").
		WillReturnResult(sqlmock.NewResult(101, 1))

	// sku 1：读快照、条件扣减、写明细
	mock.ExpectQuery("SELECT (.+) FROM `goods_sku`").
		WillReturnRows(sqlmock.NewRows([]string{"stock", "sales", "price"}).AddRow(10, 0, 800))
	mock.ExpectExec("UPDATE `goods_sku`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `order_goods`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	// sku 2
	mock.ExpectQuery("SELECT (.+) FROM `goods_sku`").
		WillReturnRows(sqlmock.NewRows([]string{"stock", "sales", "price"}).AddRow(20, 5, 350))
	mock.ExpectExec("UPDATE `goods_sku`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `order_goods`").
		WillReturnResult(sqlmock.NewResult(2, 1))

	// 总额回填
	mock.ExpectExec("UPDATE `order_info`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	orderSn, err := svc.Commit(context.Background(), 42, &types.CommitOrderRequest{
		AddrID:    3,
		PayMethod: models.PayMethodWechat,
		SkuIDs:    "1,2",
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(orderSn, "42"))

	// 提交成功后下单的条目从购物车清除
	assert.Empty(t, store.carts[42])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_InsufficientStockRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	store := newFakeCartStore()
	require.NoError(t, store.Set(context.Background(), 42, 1, 5))
	svc := newOrderService(db, store)

	expectAddress(mock, 3, 42)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `order_info`").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectQuery("SELECT (.+) FROM `goods_sku`").
		WillReturnRows(sqlmock.NewRows([]string{"stock", "sales", "price"}).AddRow(3, 0, 800))
	mock.ExpectRollback()

	_, err := svc.Commit(context.Background(), 42, &types.CommitOrderRequest{
		AddrID:    3,
		PayMethod: models.PayMethodWechat,
		SkuIDs:    "1",
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// 回滚后购物车保持原样
	assert.Equal(t, uint32(5), store.carts[42][1])
	assert.Empty(t, store.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_ContentionExhaustedRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	store := newFakeCartStore()
	require.NoError(t, store.Set(context.Background(), 42, 1, 1))
	svc := newOrderService(db, store)

	expectAddress(mock, 3, 42)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `order_info`").
		WillReturnResult(sqlmock.NewResult(101, 1))

	// 条件更新连续落空（并发订单不停抢先提交）
	for i := 0; i < stockRetryAttempts; i++ {
		mock.ExpectQuery("SELECT (.+) FROM `goods_sku`").
			WillReturnRows(sqlmock.NewRows([]string{"stock", "sales", "price"}).AddRow(10-i, uint32(i), 800))
		mock.ExpectExec("UPDATE `goods_sku`").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectRollback()

	_, err := svc.Commit(context.Background(), 42, &types.CommitOrderRequest{
		AddrID:    3,
		PayMethod: models.PayMethodWechat,
		SkuIDs:    "1",
	})
	assert.ErrorIs(t, err, ErrContentionExhausted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_CartEntryMissingRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newOrderService(db, newFakeCartStore())

	expectAddress(mock, 3, 42)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `order_info`").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectRollback()

	_, err := svc.Commit(context.Background(), 42, &types.CommitOrderRequest{
		AddrID:    3,
		PayMethod: models.PayMethodWechat,
		SkuIDs:    "1",
	})
	assert.ErrorIs(t, err, ErrCartEntryMissing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_InvalidPayMethod(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newOrderService(db, newFakeCartStore())

	_, err := svc.Commit(context.Background(), 42, &types.CommitOrderRequest{
		AddrID:    3,
		PayMethod: 9,
		SkuIDs:    "1",
	})
	assert.ErrorIs(t, err, ErrInvalidPayMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_InvalidAddress(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newOrderService(db, newFakeCartStore())

	mock.ExpectQuery("SELECT (.+) FROM `address`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	_, err := svc.Commit(context.Background(), 42, &types.CommitOrderRequest{
		AddrID:    99,
		PayMethod: models.PayMethodWechat,
		SkuIDs:    "1",
	})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestCommit_BadSkuIDs(t *testing.T) {
	db, _ := newMockDB(t)
	svc := newOrderService(db, newFakeCartStore())

	for _, raw := range []string{"", "a,b", "0"} {
		_, err := svc.Commit(context.Background(), 42, &types.CommitOrderRequest{
			AddrID:    3,
			PayMethod: models.PayMethodWechat,
			SkuIDs:    raw,
		})
		assert.ErrorIs(t, err, ErrIncompleteData, "sku_ids=%q", raw)
	}
}
