package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCompareAndSwapStock_Applied(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewGoods(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `goods_sku`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := g.CompareAndSwapStock(context.Background(), nil, 7, 10, 8, 5)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompareAndSwapStock_StaleExpectation(t *testing.T) {
	// 条件未命中（库存已被并发订单改掉）不报错，返回未生效
	db, mock := newMockDB(t)
	g := NewGoods(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `goods_sku`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ok, err := g.CompareAndSwapStock(context.Background(), nil, 7, 10, 8, 5)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompareAndSwapStock_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewGoods(db)

	wantErr := errors.New("connection reset")
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `goods_sku`").
		WillReturnError(wantErr)
	mock.ExpectRollback()

	_, err := g.CompareAndSwapStock(context.Background(), nil, 7, 10, 8, 5)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockSnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewGoods(db)

	mock.ExpectQuery("SELECT (.+) FROM `goods_sku`").
		WillReturnRows(sqlmock.NewRows([]string{"stock", "sales", "price"}).AddRow(10, 3, 800))

	snap, err := g.StockSnapshot(context.Background(), nil, 7)
	assert.NoError(t, err)
	assert.Equal(t, uint32(10), snap.Stock)
	assert.Equal(t, uint32(3), snap.Sales)
	assert.Equal(t, uint32(800), snap.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}
