// file: services/backend_client_test.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TammyBarlow/ur-fit-cards/config"
	"github.com/TammyBarlow/ur-fit-cards/dto"
)

func newTestClient(baseURL string) *BackendClient {
	return NewBackendClient(&config.Config{
		BackendBaseURL:     baseURL,
		BackendTimeoutSecs: 5,
	})
}

func TestListChallengesRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/challenges" {
			t.Errorf("path = %s, want /api/challenges", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok-1")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"c1","title":"Hydration Challenge","totalDays":30,"participantCount":5},
			{"_id":"c2","title":"Custom","total_days":10,"participant_count":0,"isJoined":true}
		]`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).ListChallenges(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	// 顺序按服务端返回保留
	if records[0].ID != "c1" || records[0].TotalDays != 30 {
		t.Errorf("records[0] = %+v", records[0])
	}

	records[1].Normalize()
	if records[1].ID != "c2" || records[1].TotalDays != 10 || !records[1].Joined {
		t.Errorf("records[1] after Normalize = %+v", records[1])
	}
}

func TestCreateChallengePostsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var body dto.CreateChallengeReq
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Title != "Hydration Challenge" || body.TotalDays != 30 {
			t.Errorf("body = %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"new-1","title":"Hydration Challenge","totalDays":30}`))
	}))
	defer server.Close()

	record, err := newTestClient(server.URL).CreateChallenge(context.Background(), "tok-1", dto.CreateChallengeReq{
		Title:       "Hydration Challenge",
		Description: "Drink up",
		TotalDays:   30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "new-1" {
		t.Errorf("ID = %q, want %q", record.ID, "new-1")
	}
}

func TestUpdateChallengePutsToID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/api/challenges/c9" {
			t.Errorf("path = %s, want /api/challenges/c9", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c9","title":"Renamed"}`))
	}))
	defer server.Close()

	record, err := newTestClient(server.URL).UpdateChallenge(context.Background(), "tok-1", "c9", dto.UpdateChallengeReq{
		Title: "Renamed", Description: "d", TotalDays: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", record.Title)
	}
}

func TestJoinChallengePostsToJoinPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/challenges/c3/join" {
			t.Errorf("path = %s, want /api/challenges/c3/join", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"joined":true}`))
	}))
	defer server.Close()

	if err := newTestClient(server.URL).JoinChallenge(context.Background(), "tok-1", "c3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNonSuccessStatusBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"coordinators only"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListChallenges(context.Background(), "tok-1")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", apiErr.Status)
	}
	if apiErr.Msg != "coordinators only" {
		t.Errorf("Msg = %q, want %q", apiErr.Msg, "coordinators only")
	}
}

func TestNetworkErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	if _, err := newTestClient(server.URL).ListChallenges(context.Background(), "tok-1"); err == nil {
		t.Fatal("expected error for closed server")
	}
}
