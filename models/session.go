// file: models/session.go
package models

// 自定义类型 UserRole
type UserRole string

const (
	RoleParticipant UserRole = "participant"
	RoleCoordinator UserRole = "coordinator"
)

// Valid 角色取值校验
func (r UserRole) Valid() bool {
	return r == RoleParticipant || r == RoleCoordinator
}

// Session 由本地令牌解码得到的身份，每次页面激活重新计算，从不落库
type Session struct {
	Subject string   `json:"subject"`
	Role    UserRole `json:"role"`
}
