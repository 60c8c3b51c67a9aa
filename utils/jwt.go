// file: utils/jwt.go
package utils

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/TammyBarlow/ur-fit-cards/models"
)

// Claims 上游签发的访问令牌里的业务声明
type Claims struct {
	// UserID 旧版令牌用 userId 而不是标准的 sub
	UserID string          `json:"userId"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// ResolveSession 把本地存储的原始令牌解码成 Session。
// 只做解码，不校验签名和过期——结果仅用于页面路由，
// 真正的权限判定由上游后端对每个请求独立执行。
// 任何解码失败都等同于未登录，返回 nil 而不是错误。
func ResolveSession(rawToken string) *models.Session {
	if rawToken == "" {
		return nil
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(rawToken, &Claims{})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.UserID
	}
	// 主体或角色缺失/非法的令牌视为无会话
	if subject == "" || !claims.Role.Valid() {
		return nil
	}

	return &models.Session{Subject: subject, Role: claims.Role}
}
