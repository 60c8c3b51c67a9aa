// file: dto/challenge.go
package dto

import (
	"errors"
	"strings"
)

// ========== 上游后端 响应 DTO ==========

// ChallengeRecord 上游列表/详情接口返回的原始记录。
// Node 后端历史上字段命名不统一（camelCase / snake_case / Mongo 的 _id），
// 所有别名在 Normalize 里归一化，别名 tag 互不重复。
type ChallengeRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalDays   int    `json:"totalDays"`
	// ParticipantCount 参与人数，非负
	ParticipantCount int    `json:"participantCount"`
	ImageURL         string `json:"imageUrl"`
	Joined           bool   `json:"joined"`

	// 兼容别名
	IDMongo               string `json:"_id"`
	TotalDaysSnake        int    `json:"total_days"`
	ParticipantCountSnake int    `json:"participant_count"`
	ImageURLSnake         string `json:"image_url"`
	JoinedCamel           bool   `json:"isJoined"`
}

// Normalize 将别名归一化到规范字段
func (r *ChallengeRecord) Normalize() {
	if r.ID == "" && r.IDMongo != "" {
		r.ID = r.IDMongo
	}
	if r.TotalDays == 0 && r.TotalDaysSnake != 0 {
		r.TotalDays = r.TotalDaysSnake
	}
	if r.ParticipantCount == 0 && r.ParticipantCountSnake != 0 {
		r.ParticipantCount = r.ParticipantCountSnake
	}
	if r.ImageURL == "" && r.ImageURLSnake != "" {
		r.ImageURL = r.ImageURLSnake
	}
	if !r.Joined && r.JoinedCamel {
		r.Joined = true
	}
	r.Title = strings.TrimSpace(r.Title)
}

// ========== 上游后端 请求 DTO ==========

// CreateChallengeReq POST /api/challenges 请求体（上游为 Node 服务，走 camelCase）
type CreateChallengeReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalDays   int    `json:"totalDays"`
}

// UpdateChallengeReq PUT /api/challenges/:id 请求体
type UpdateChallengeReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalDays   int    `json:"totalDays"`
}

// ========== 本服务（浏览器 -> 仪表盘）请求 DTO ==========

// ChallengeForm 创建/编辑弹窗提交的表单
type ChallengeForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalDays   int    `json:"totalDays"`
}

// Validate 必填校验（统一在这里做）
func (f *ChallengeForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	if f.Title == "" {
		return errors.New("title is required")
	}
	if f.Description == "" {
		return errors.New("description is required")
	}
	if f.TotalDays <= 0 {
		return errors.New("totalDays must be a positive number")
	}
	return nil
}

// ========== 渲染用 视图 DTO ==========

// ChallengeCard 卡片渲染数据。按钮形态是展示策略：
// 协调员看到 Edit，参与者看到 Join / Already Joined（已加入时禁用）。
type ChallengeCard struct {
	ID               string
	Title            string
	Description      string
	TotalDays        int
	ParticipantCount int
	ImageRef         string
	IsCoordinator    bool
	Joined           bool
}
