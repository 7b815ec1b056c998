package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateOrderSn(t *testing.T) {
	sn := GenerateOrderSn(42)

	if !strings.HasSuffix(sn, "42") {
		t.Fatalf("expected user id suffix, got %s", sn)
	}

	// 前 14 位是秒级时间戳
	ts, err := time.ParseInLocation("20060102150405", sn[:14], time.Local)
	if err != nil {
		t.Fatalf("invalid timestamp prefix in %s: %v", sn, err)
	}
	if d := time.Since(ts); d < 0 || d > time.Minute {
		t.Fatalf("timestamp prefix too far from now: %s", sn)
	}
}

func TestGenerateOrderSn_DistinctUsers(t *testing.T) {
	// 同一秒内不同用户的订单号不同
	a := GenerateOrderSn(1)
	b := GenerateOrderSn(2)
	if a == b {
		t.Fatalf("expected distinct order sn, got %s twice", a)
	}
}
