// file: services/backend_client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TammyBarlow/ur-fit-cards/config"
	"github.com/TammyBarlow/ur-fit-cards/dto"
)

// ChallengeAPI 上游挑战后端的客户端接口，Board 只依赖这个抽象
type ChallengeAPI interface {
	ListChallenges(ctx context.Context, token string) ([]dto.ChallengeRecord, error)
	CreateChallenge(ctx context.Context, token string, req dto.CreateChallengeReq) (*dto.ChallengeRecord, error)
	UpdateChallenge(ctx context.Context, token string, id string, req dto.UpdateChallengeReq) (*dto.ChallengeRecord, error)
	JoinChallenge(ctx context.Context, token string, id string) error
}

// APIError 上游返回非 2xx 时的类型化错误
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// BackendClient ChallengeAPI 的 HTTP 实现
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBackendClient(cfg *config.Config) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimRight(cfg.BackendBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.BackendTimeoutSecs) * time.Second,
		},
	}
}

func (c *BackendClient) ListChallenges(ctx context.Context, token string) ([]dto.ChallengeRecord, error) {
	var records []dto.ChallengeRecord
	if err := c.do(ctx, http.MethodGet, "/api/challenges", token, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *BackendClient) CreateChallenge(ctx context.Context, token string, req dto.CreateChallengeReq) (*dto.ChallengeRecord, error) {
	var record dto.ChallengeRecord
	if err := c.do(ctx, http.MethodPost, "/api/challenges", token, req, &record); err != nil {
		return nil, err
	}
	record.Normalize()
	return &record, nil
}

func (c *BackendClient) UpdateChallenge(ctx context.Context, token string, id string, req dto.UpdateChallengeReq) (*dto.ChallengeRecord, error) {
	var record dto.ChallengeRecord
	if err := c.do(ctx, http.MethodPut, "/api/challenges/"+id, token, req, &record); err != nil {
		return nil, err
	}
	record.Normalize()
	return &record, nil
}

func (c *BackendClient) JoinChallenge(ctx context.Context, token string, id string) error {
	return c.do(ctx, http.MethodPost, "/api/challenges/"+id+"/join", token, nil, nil)
}

// do 统一的请求发送：bearer 认证、JSON 编解码、非 2xx 转 APIError
func (c *BackendClient) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Msg: readErrorMsg(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorMsg 尽力从错误响应体里取一句人话（msg/message/error 任一字段）
func readErrorMsg(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	for _, msg := range []string{payload.Msg, payload.Message, payload.Err} {
		if msg != "" {
			return msg
		}
	}
	return ""
}
