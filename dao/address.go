package dao

import (
	"context"

	"FreshMall/models"

	"gorm.io/gorm"
)

type Address struct {
	Db *gorm.DB
}

func NewAddress(db *gorm.DB) *Address {
	return &Address{Db: db}
}

// GetUserAddress 按 ID 取地址并校验归属
func (a *Address) GetUserAddress(ctx context.Context, addrID, userID uint64) (*models.Address, error) {
	var addr models.Address
	err := a.Db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addrID, userID).
		First(&addr).Error
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (a *Address) ListByUser(ctx context.Context, userID uint64) ([]*models.Address, error) {
	var addrs []*models.Address
	err := a.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default desc, id desc").
		Find(&addrs).Error
	return addrs, err
}
