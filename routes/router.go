// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/TammyBarlow/ur-fit-cards/config"
	"github.com/TammyBarlow/ur-fit-cards/controllers"
	"github.com/TammyBarlow/ur-fit-cards/middlewares"
	"github.com/TammyBarlow/ur-fit-cards/models"
	"github.com/TammyBarlow/ur-fit-cards/services"
	"github.com/TammyBarlow/ur-fit-cards/templates"
)

func SetupRouter(cfg *config.Config, boards *services.BoardRegistry) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(templates.Parse())
	r.Use(middlewares.RequestID())

	r.Static("/static", "./static")

	dashboard := controllers.NewDashboardController(boards)
	session := controllers.NewSessionController(boards, cfg.TokenCookieName)

	r.GET("/", session.Root)
	r.GET("/login", session.LoginPage)
	r.POST("/logout", session.Logout)

	// --- 参与者看板 ---
	participant := r.Group("/challenges")
	participant.Use(middlewares.RequireRole(cfg.TokenCookieName, models.RoleParticipant))
	{
		participant.GET("", dashboard.ParticipantBoard)
		participant.GET("/api/view", dashboard.BoardView)
		participant.POST("/api/:id/join", dashboard.JoinChallenge)
	}

	// --- 协调员看板 ---
	coordinator := r.Group("/coordinator")
	coordinator.Use(middlewares.RequireRole(cfg.TokenCookieName, models.RoleCoordinator))
	{
		coordinator.GET("/challenges", dashboard.CoordinatorBoard)
		coordinator.GET("/api/view", dashboard.BoardView)
		coordinator.POST("/api/challenges", dashboard.CreateChallenge)
		coordinator.POST("/api/challenges/:id/edit", dashboard.BeginEdit)
		coordinator.PUT("/api/challenges/:id", dashboard.CommitEdit)
		coordinator.POST("/api/create-modal/open", dashboard.OpenCreateModal)
		coordinator.POST("/api/create-modal/close", dashboard.CloseCreateModal)
		coordinator.POST("/api/edit-modal/close", dashboard.CloseEditModal)
	}

	return r
}
