package tenant

import (
	"fmt"
	"regexp"
)

// StoreIDLength 店铺 ID 固定长度
const StoreIDLength = 8

var storeIDPattern = regexp.MustCompile(`^[0-9]{8}$`)

// ValidateStoreID 校验店铺 ID
// 只有恰好 8 位 ASCII 数字的字符串才能作为查询过滤条件，原样返回
// 空字符串视为缺失，同样拒绝
func ValidateStoreID(candidate string) (string, error) {
	if !storeIDPattern.MatchString(candidate) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTenantID, candidate)
	}
	return candidate, nil
}

// IsStoreID 判断字符串是否为合法店铺 ID（登录时区分 slug 和 ID）
func IsStoreID(candidate string) bool {
	return storeIDPattern.MatchString(candidate)
}
