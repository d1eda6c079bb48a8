package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c, srv
}

func TestClient_Login_Success(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["email"] != "a@x.com" || body["password"] != "p" {
			t.Fatalf("unexpected credentials: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok123",
			"user":  map[string]any{"_id": "u1", "name": "A", "role": "worker"},
		})
	}))

	token, user, err := c.Login(context.Background(), "a@x.com", "p")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token != "tok123" {
		t.Fatalf("unexpected token: %s", token)
	}
	if user == nil || user.Role != domain.RoleWorker {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestClient_Login_RemoteMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid credentials"})
	}))

	_, _, err := c.Login(context.Background(), "a@x.com", "wrong")
	if err == nil {
		t.Fatalf("expected error")
	}
	if Message(err) != "Invalid credentials" {
		t.Fatalf("expected server message, got %q", Message(err))
	}
	if !IsRemote(err) {
		t.Fatalf("expected remote error")
	}
}

func TestClient_Register_SendsShapedPayload(t *testing.T) {
	price := 500.0
	var got map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/register" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))

	err := c.Register(context.Background(), ports.RegisterInput{
		Name:         "A",
		Email:        "a@x.com",
		Password:     "p",
		Role:         domain.RoleWorker,
		Price:        &price,
		Skills:       []string{"React", "Go"},
		Certificates: []string{""},
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if got["price"] != 500.0 {
		t.Fatalf("expected numeric price, got %v", got["price"])
	}
	skills, _ := got["skills"].([]any)
	if len(skills) != 2 || skills[0] != "React" || skills[1] != "Go" {
		t.Fatalf("unexpected skills: %v", got["skills"])
	}
	certs, _ := got["certificates"].([]any)
	if len(certs) != 1 || certs[0] != "" {
		t.Fatalf("unexpected certificates: %v", got["certificates"])
	}
}

func TestClient_ListJobs_AttachesBearerToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok123" {
			t.Fatalf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "j1", "title": "Fix bug", "hasApplied": true},
		})
	}))

	jobs, err := c.ListJobs(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "j1" || !jobs[0].HasApplied {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}

func TestClient_ListWorkers_NoToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Fatalf("unexpected Authorization header on public read")
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"_id": "w1", "role": "worker"}})
	}))

	workers, err := c.ListWorkers(context.Background())
	if err != nil {
		t.Fatalf("ListWorkers returned error: %v", err)
	}
	if len(workers) != 1 || workers[0].ID != "w1" {
		t.Fatalf("unexpected workers: %+v", workers)
	}
}

func TestClient_ApplyToJob_Path(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	if err := c.ApplyToJob(context.Background(), "tok", "job42"); err != nil {
		t.Fatalf("ApplyToJob returned error: %v", err)
	}
	if gotPath != "/api/apply-job/job42" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
}

func TestClient_PostJob_RequiresFields(t *testing.T) {
	called := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	if _, err := c.PostJob(context.Background(), "tok", "", "desc"); !errors.Is(err, domain.ErrEmptyJobForm) {
		t.Fatalf("expected ErrEmptyJobForm, got %v", err)
	}
	if _, err := c.PostJob(context.Background(), "tok", "title", "  "); !errors.Is(err, domain.ErrEmptyJobForm) {
		t.Fatalf("expected ErrEmptyJobForm, got %v", err)
	}
	if called {
		t.Fatalf("validation failure must not reach the network")
	}
}

func TestClient_MyPostedJobs_Envelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/my-posted-jobs" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jobs": []map[string]any{
				{"jobId": "j1", "title": "Fix bug", "applicants": []map[string]any{{"workerId": "w1", "name": "A"}}},
			},
		})
	}))

	jobs, err := c.MyPostedJobs(context.Background(), "tok")
	if err != nil {
		t.Fatalf("MyPostedJobs returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].JobID != "j1" || len(jobs[0].Applicants) != 1 {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}

func TestClient_Unauthorized_MapsToSentinel(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "token expired"})
	}))

	_, err := c.ListJobs(context.Background(), "stale")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c, err := New(srv.URL, time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = c.ListWorkers(context.Background())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if IsRemote(err) {
		t.Fatalf("transport failure must not be a remote error")
	}
	if Message(err) != fallbackMessage {
		t.Fatalf("expected fallback message, got %q", Message(err))
	}
}

func TestNew_RejectsBadURL(t *testing.T) {
	if _, err := New("not a url", time.Second, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for invalid base URL")
	}
}
