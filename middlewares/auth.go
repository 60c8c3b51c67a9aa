// file: middlewares/auth.go
package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TammyBarlow/ur-fit-cards/models"
	"github.com/TammyBarlow/ur-fit-cards/utils"
)

// Decision 访问门禁的裁决结果
type Decision struct {
	Allowed bool
	// Target 非 Allow 时的重定向地址
	Target string
}

// RoleHome 各角色的默认落地页
func RoleHome(role models.UserRole) string {
	if role == models.RoleCoordinator {
		return "/coordinator/challenges"
	}
	return "/challenges"
}

// Authorize 门禁裁决：无会话 -> 登录页；角色不符 -> 回到实际角色的落地页；否则放行。
// 这是纯 UX 路由，不构成权限边界——上游后端会对每个请求独立鉴权。
func Authorize(session *models.Session, required models.UserRole) Decision {
	if session == nil {
		return Decision{Target: "/login"}
	}
	if session.Role != required {
		return Decision{Target: RoleHome(session.Role)}
	}
	return Decision{Allowed: true}
}

// RequireRole 页面门禁中间件。每次请求只裁决一次，且必须在任何处理函数
// （也就是任何上游拉取）之前执行：裁决不通过时直接 303，受保护内容完全不渲染。
func RequireRole(cookieName string, required models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, _ := c.Cookie(cookieName)
		session := utils.ResolveSession(rawToken)

		decision := Authorize(session, required)
		if !decision.Allowed {
			c.Redirect(http.StatusSeeOther, decision.Target)
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Set("token", rawToken)
		c.Next()
	}
}

// SessionFrom 从 gin 上下文取出门禁写入的会话和原始令牌
func SessionFrom(c *gin.Context) (*models.Session, string) {
	session := c.MustGet("session").(*models.Session)
	token := c.MustGet("token").(string)
	return session, token
}
