// file: controllers/session_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TammyBarlow/ur-fit-cards/middlewares"
	"github.com/TammyBarlow/ur-fit-cards/services"
	"github.com/TammyBarlow/ur-fit-cards/utils"
)

// SessionController 登录页、根路由分流和登出。
// 令牌的签发不在本服务（由上游认证完成后种到 cookie），这里只读取。
type SessionController struct {
	boards     *services.BoardRegistry
	cookieName string
}

func NewSessionController(boards *services.BoardRegistry, cookieName string) *SessionController {
	return &SessionController{boards: boards, cookieName: cookieName}
}

func (ctl *SessionController) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Sign in"})
}

// Root 按会话角色分流到各自的落地页
func (ctl *SessionController) Root(c *gin.Context) {
	rawToken, _ := c.Cookie(ctl.cookieName)
	session := utils.ResolveSession(rawToken)
	if session == nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	c.Redirect(http.StatusSeeOther, middlewares.RoleHome(session.Role))
}

// Logout 销毁看板、过期 cookie，回登录页
func (ctl *SessionController) Logout(c *gin.Context) {
	rawToken, _ := c.Cookie(ctl.cookieName)
	if session := utils.ResolveSession(rawToken); session != nil {
		ctl.boards.Drop(session.Subject)
	}
	c.SetCookie(ctl.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
