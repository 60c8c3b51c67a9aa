// file: services/board_service.go
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/TammyBarlow/ur-fit-cards/dto"
	"github.com/TammyBarlow/ur-fit-cards/mappers"
	"github.com/TammyBarlow/ur-fit-cards/models"
)

// ErrStaleChallenge 针对内存列表里已不存在的 id 发起编辑
var ErrStaleChallenge = errors.New("challenge not found in current list")

// Board 一个会话的挑战看板：列表同步 + 变更工作流 + 视图状态。
// BFF 下同一看板可能被并发请求访问，状态用互斥锁保护；
// 但不对乱序完成做守卫——最后落定的同步覆盖列表（与源设计一致）。
type Board struct {
	api   ChallengeAPI
	token string // 构造后只读

	mu         sync.Mutex
	challenges []models.Challenge
	loading    bool
	createOpen bool
	editOpen   bool
	current    *models.Challenge
	errMsg     string
}

func NewBoard(api ChallengeAPI, token string) *Board {
	return &Board{api: api, token: token}
}

// BoardView 渲染用的状态快照。Loading 为 true 时列表不可信。
type BoardView struct {
	Challenges []models.Challenge `json:"challenges"`
	Loading    bool               `json:"loading"`
	CreateOpen bool               `json:"createOpen"`
	EditOpen   bool               `json:"editOpen"`
	Current    *models.Challenge  `json:"currentChallenge"`
	Err        string             `json:"error,omitempty"`
}

// Refresh 从上游拉取权威列表并重新发布为视图状态。
// 进入前置 loading，结束后无条件清掉。
// 拉取失败：保留上一次的列表，错误透出到视图（而不是静默清空）。
func (b *Board) Refresh(ctx context.Context) {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	records, err := b.api.ListChallenges(ctx, b.token)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false

	if err != nil {
		b.errMsg = "Could not load challenges: " + err.Error()
		return
	}

	// 服务器顺序原样保留，不做客户端重排
	list := make([]models.Challenge, 0, len(records))
	for _, rec := range records {
		rec.Normalize()
		list = append(list, mappers.MapRecordToChallenge(rec))
	}
	b.challenges = list
	b.errMsg = ""
}

// Create 提交新挑战。成功后关闭创建弹窗并触发一次 Refresh；
// 失败时弹窗保持打开，错误透出到视图。
func (b *Board) Create(ctx context.Context, form dto.ChallengeForm) error {
	if err := form.Validate(); err != nil {
		b.setErr(err.Error())
		return err
	}

	req := dto.CreateChallengeReq{
		Title:       form.Title,
		Description: form.Description,
		TotalDays:   form.TotalDays,
	}
	if _, err := b.api.CreateChallenge(ctx, b.token, req); err != nil {
		b.setErr("Could not create challenge: " + err.Error())
		return err
	}

	b.mu.Lock()
	b.createOpen = false
	b.errMsg = ""
	b.mu.Unlock()

	b.Refresh(ctx)
	return nil
}

// BeginEdit 在内存列表里查找 id 并暂存为当前编辑对象，打开编辑弹窗。
// 列表已过期（id 不在）时不打开弹窗，显式报 ErrStaleChallenge，
// 避免对着空对象编辑。
func (b *Board) BeginEdit(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.challenges {
		if b.challenges[i].ID == id {
			staged := b.challenges[i]
			b.current = &staged
			b.editOpen = true
			b.errMsg = ""
			return nil
		}
	}

	b.current = nil
	b.errMsg = "That challenge is no longer available, the list may be out of date."
	return ErrStaleChallenge
}

// CommitEdit 把暂存的编辑提交到上游（显式的 update 调用，不再是假成功），
// 成功后关闭弹窗并 Refresh。
func (b *Board) CommitEdit(ctx context.Context, form dto.ChallengeForm) error {
	b.mu.Lock()
	current := b.current
	b.mu.Unlock()

	if current == nil {
		b.setErr("No challenge is staged for editing.")
		return ErrStaleChallenge
	}
	if err := form.Validate(); err != nil {
		b.setErr(err.Error())
		return err
	}

	req := dto.UpdateChallengeReq{
		Title:       form.Title,
		Description: form.Description,
		TotalDays:   form.TotalDays,
	}
	if _, err := b.api.UpdateChallenge(ctx, b.token, current.ID, req); err != nil {
		b.setErr("Could not update challenge: " + err.Error())
		return err
	}

	b.mu.Lock()
	b.editOpen = false
	b.current = nil
	b.errMsg = ""
	b.mu.Unlock()

	b.Refresh(ctx)
	return nil
}

// Join 参与者加入挑战，成功后 Refresh。
// 已加入的挑战按钮本应禁用，这里兜底不再发请求。
func (b *Board) Join(ctx context.Context, id string) error {
	b.mu.Lock()
	alreadyJoined := false
	for i := range b.challenges {
		if b.challenges[i].ID == id && b.challenges[i].Joined {
			alreadyJoined = true
			break
		}
	}
	b.mu.Unlock()

	if alreadyJoined {
		return nil
	}

	if err := b.api.JoinChallenge(ctx, b.token, id); err != nil {
		b.setErr("Could not join challenge: " + err.Error())
		return err
	}

	b.Refresh(ctx)
	return nil
}

func (b *Board) OpenCreate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.createOpen = true
}

func (b *Board) CloseCreate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.createOpen = false
}

func (b *Board) CloseEdit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editOpen = false
	b.current = nil
}

// Snapshot 渲染用快照（深拷贝列表，渲染方只读）
func (b *Board) Snapshot() BoardView {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := make([]models.Challenge, len(b.challenges))
	copy(list, b.challenges)

	var current *models.Challenge
	if b.current != nil {
		staged := *b.current
		current = &staged
	}

	return BoardView{
		Challenges: list,
		Loading:    b.loading,
		CreateOpen: b.createOpen,
		EditOpen:   b.editOpen,
		Current:    current,
		Err:        b.errMsg,
	}
}

func (b *Board) setErr(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errMsg = msg
}

// BoardRegistry 按会话主体持有各自的看板
type BoardRegistry struct {
	api ChallengeAPI

	mu     sync.Mutex
	boards map[string]*Board
}

func NewBoardRegistry(api ChallengeAPI) *BoardRegistry {
	return &BoardRegistry{api: api, boards: make(map[string]*Board)}
}

// Board 取出（或创建）会话对应的看板。令牌变了说明重新登录，旧看板作废。
func (r *BoardRegistry) Board(session *models.Session, token string) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.boards[session.Subject]
	if !ok || board.token != token {
		board = NewBoard(r.api, token)
		r.boards[session.Subject] = board
	}
	return board
}

// Drop 登出时销毁看板
func (r *BoardRegistry) Drop(subject string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.boards, subject)
}
