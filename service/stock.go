package service

import (
	"FreshMall/dao"
)

// 同一 SKU 的条件更新最多尝试 3 次
// 冲突窗口在亚毫秒级，失败后立即重读重试即可，不需要退避
const stockRetryAttempts = 3

type stockReader func() (*dao.StockSnapshot, error)

type stockSwapper func(expectedStock, newStock, newSales uint32) (bool, error)

// reserveStock 乐观并发的库存扣减
// 读当前 (stock, sales, price)，以读到的 stock 为条件做一次条件更新；
// 更新未命中说明有并发订单抢先提交，重读后重试。
// 库存不足立即失败（等待补货没有意义，不属于可重试冲突）；
// 重试次数耗尽返回 ErrContentionExhausted。
// 成功时返回扣减时点的单价，调用方以此价写订单明细
func reserveStock(attempts int, count uint32, read stockReader, swap stockSwapper) (uint32, error) {
	for i := 0; i < attempts; i++ {
		snap, err := read()
		if err != nil {
			return 0, err
		}

		if count > snap.Stock {
			return 0, ErrInsufficientStock
		}

		ok, err := swap(snap.Stock, snap.Stock-count, snap.Sales+count)
		if err != nil {
			return 0, err
		}
		if ok {
			return snap.Price, nil
		}
	}

	return 0, ErrContentionExhausted
}
