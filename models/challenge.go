// file: models/challenge.go
package models

// Challenge 挑战实体（装饰后的视图侧表示，数据本体由上游后端持有）
type Challenge struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	TotalDays        int    `json:"totalDays"`
	ParticipantCount int    `json:"participantCount"`
	// ImageRef 经过回退链解析，保证非空：标题映射 -> 后端 imageUrl -> 占位图
	ImageRef string `json:"imageRef"`
	Joined   bool   `json:"joined"`
}
