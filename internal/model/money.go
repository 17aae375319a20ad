package model

import (
	"errors"
	"fmt"
	"strings"
)

// 单个金额（单价、折扣、运费、小计）上限 1e12 分，数量上限 MaxQuantity，
// 两者相乘不会溢出 int64
const (
	MaxAmount   int64 = 1_000_000_000_000
	MaxQuantity       = 100000
)

var ErrAmountOutOfRange = errors.New("金额或数量超出范围")

// FormatAmount 分 -> "USD 12.34"；币种为空时只输出数字
func FormatAmount(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	num := fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return num
	}
	return currency + " " + num
}
