package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost 测试中调低
var bcryptCost = bcrypt.DefaultCost

// HashPassword 明文密码只在这里出现，落库的永远是 bcrypt 哈希
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 校验密码
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// burnPasswordCheck 用户不存在时也做一次 bcrypt 比较，响应时间不暴露用户是否存在
func burnPasswordCheck(plain string) {
	dummyOnce.Do(func() {
		h, _ := bcrypt.GenerateFromPassword([]byte("order-dash-dummy-password"), bcryptCost)
		dummyHash = string(h)
	})
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
}
