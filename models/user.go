package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
// 注册激活/登录态由账号子系统负责，这里只保留订单链路需要的字段
type User struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username  string         `gorm:"size:64;not null;uniqueIndex:idx_username;column:username" json:"username"`
	Password  string         `gorm:"size:255;not null;column:password" json:"-"`
	Email     string         `gorm:"size:255;default:'';column:email" json:"email"`
	IsActive  bool           `gorm:"default:false;column:is_active" json:"is_active"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Address 收货地址
type Address struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_addr_user_id;column:user_id" json:"user_id"`
	Receiver  string    `gorm:"size:64;not null;column:receiver" json:"receiver"`     // Receiver: 收件人
	Addr      string    `gorm:"size:256;not null;column:addr" json:"addr"`            // Addr: 收件地址
	ZipCode   string    `gorm:"size:16;default:'';column:zip_code" json:"zip_code"`   // ZipCode: 邮编
	Phone     string    `gorm:"size:16;not null;column:phone" json:"phone"`           // Phone: 联系电话
	IsDefault bool      `gorm:"default:false;column:is_default" json:"is_default"`    // IsDefault: 是否默认地址
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Address) TableName() string {
	return "address"
}
