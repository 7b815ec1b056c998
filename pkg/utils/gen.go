package utils

import (
	"fmt"
	"time"
)

// GenerateOrderSn 生成业务订单号：时间戳（秒级）+ 用户ID
// 同一个用户一秒内不会提交两单，该拼接在当前规模下全局唯一
func GenerateOrderSn(userID uint64) string {
	return fmt.Sprintf("%s%d", time.Now().Format("20060102150405"), userID)
}
