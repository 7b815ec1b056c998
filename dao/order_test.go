package dao

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMarkPaid(t *testing.T) {
	db, mock := newMockDB(t)
	o := NewOrder(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `order_info`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := o.MarkPaid(context.Background(), "2026010112000042", "4200001")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaid_AlreadyConfirmed(t *testing.T) {
	// 状态条件未命中说明订单已确认过，重复确认不生效
	db, mock := newMockDB(t)
	o := NewOrder(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `order_info`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ok, err := o.MarkPaid(context.Background(), "2026010112000042", "4200001")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySn(t *testing.T) {
	db, mock := newMockDB(t)
	o := NewOrder(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `order_info`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_sn", "user_id", "status", "created_at"}).
			AddRow(101, "2026010112000042", 42, 1, now))

	order, err := o.GetBySn(context.Background(), "2026010112000042", 42)
	assert.NoError(t, err)
	assert.Equal(t, uint64(101), order.ID)
	assert.Equal(t, int8(1), order.Status)
}
