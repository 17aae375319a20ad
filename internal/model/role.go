package model

import "fmt"

// Role 店铺内角色
type Role string

const (
	RoleViewer    Role = "viewer"     // 只读
	RoleDataEntry Role = "data_entry" // 录入：客户/商品/订单增改
	RoleAdmin     Role = "admin"      // 店铺管理员：删除、设置、成员管理
)

// AllRoles 按权限从低到高排列
var AllRoles = []Role{RoleViewer, RoleDataEntry, RoleAdmin}

// Level 权限等级，未知角色为 0
func (r Role) Level() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleDataEntry:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// Valid 是否为已知角色
func (r Role) Valid() bool { return r.Level() > 0 }

// AtLeast 当前角色是否不低于 min；未知角色一律返回 false
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && min.Valid() && r.Level() >= min.Level()
}

// Compare 全序比较：-1 / 0 / 1
func (r Role) Compare(other Role) int {
	switch {
	case r.Level() < other.Level():
		return -1
	case r.Level() > other.Level():
		return 1
	default:
		return 0
	}
}

// ParseRole 解析角色字符串
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
