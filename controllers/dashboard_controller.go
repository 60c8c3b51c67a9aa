// file: controllers/dashboard_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TammyBarlow/ur-fit-cards/dto"
	"github.com/TammyBarlow/ur-fit-cards/mappers"
	"github.com/TammyBarlow/ur-fit-cards/middlewares"
	"github.com/TammyBarlow/ur-fit-cards/services"
	"github.com/TammyBarlow/ur-fit-cards/utils"
)

type DashboardController struct {
	boards *services.BoardRegistry
}

func NewDashboardController(boards *services.BoardRegistry) *DashboardController {
	return &DashboardController{boards: boards}
}

func (ctl *DashboardController) board(c *gin.Context) *services.Board {
	session, token := middlewares.SessionFrom(c)
	return ctl.boards.Board(session, token)
}

// renderBoard 页面激活：门禁已放行，先同步一次列表再渲染
func (ctl *DashboardController) renderBoard(c *gin.Context, coordinator bool, title string) {
	board := ctl.board(c)
	board.Refresh(c.Request.Context())

	view := board.Snapshot()
	session, _ := middlewares.SessionFrom(c)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":       title,
		"Coordinator": coordinator,
		"View":        view,
		"Cards":       mappers.MapChallengesToCards(view.Challenges, coordinator),
		"Session":     session,
	})
}

func (ctl *DashboardController) CoordinatorBoard(c *gin.Context) {
	ctl.renderBoard(c, true, "Coordinator Dashboard")
}

func (ctl *DashboardController) ParticipantBoard(c *gin.Context) {
	ctl.renderBoard(c, false, "Challenges")
}

// BoardView 弹窗脚本轮询用的状态快照，只读，不触发同步
func (ctl *DashboardController) BoardView(c *gin.Context) {
	utils.Success(c, "success", ctl.board(c).Snapshot())
}

func (ctl *DashboardController) CreateChallenge(c *gin.Context) {
	var form dto.ChallengeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.Error(c, 1001, "invalid request: "+err.Error())
		return
	}

	board := ctl.board(c)
	if err := board.Create(c.Request.Context(), form); err != nil {
		utils.Error(c, 5000, err.Error())
		return
	}
	utils.Success(c, "Challenge created successfully", nil)
}

func (ctl *DashboardController) BeginEdit(c *gin.Context) {
	id := c.Param("id")

	board := ctl.board(c)
	if err := board.BeginEdit(id); err != nil {
		if errors.Is(err, services.ErrStaleChallenge) {
			utils.Error(c, 4004, "challenge not found, refresh the page and try again")
			return
		}
		utils.Error(c, 5000, err.Error())
		return
	}
	utils.Success(c, "success", board.Snapshot().Current)
}

func (ctl *DashboardController) CommitEdit(c *gin.Context) {
	var form dto.ChallengeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.Error(c, 1001, "invalid request: "+err.Error())
		return
	}

	board := ctl.board(c)
	if err := board.CommitEdit(c.Request.Context(), form); err != nil {
		if errors.Is(err, services.ErrStaleChallenge) {
			utils.Error(c, 4004, "no challenge staged for editing")
			return
		}
		utils.Error(c, 5000, err.Error())
		return
	}
	utils.Success(c, "Challenge updated successfully", nil)
}

func (ctl *DashboardController) JoinChallenge(c *gin.Context) {
	id := c.Param("id")

	board := ctl.board(c)
	if err := board.Join(c.Request.Context(), id); err != nil {
		utils.Error(c, 5000, err.Error())
		return
	}
	utils.Success(c, "Joined challenge", nil)
}

func (ctl *DashboardController) OpenCreateModal(c *gin.Context) {
	ctl.board(c).OpenCreate()
	utils.Success(c, "success", nil)
}

func (ctl *DashboardController) CloseCreateModal(c *gin.Context) {
	ctl.board(c).CloseCreate()
	utils.Success(c, "success", nil)
}

func (ctl *DashboardController) CloseEditModal(c *gin.Context) {
	ctl.board(c).CloseEdit()
	utils.Success(c, "success", nil)
}
