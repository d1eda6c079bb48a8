// Package gateway is the one-shot HTTP client for the remote Workling
// marketplace API. Every exported method performs exactly one round trip:
// no retries, no backoff, no caching. Failures reported by the server are
// surfaced as *RemoteError carrying the server's msg field; everything else
// is a transport error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/core/ports"
	"github.com/workling/portal/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Client implements ports.Gateway against a live marketplace API.
type Client struct {
	base string
	hc   *http.Client
	log  zerolog.Logger
}

var _ ports.Gateway = (*Client)(nil)

// New creates a Client for the API rooted at baseURL. A default request
// timeout is applied when none is provided.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("gateway: invalid base URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/"),
		hc:   &http.Client{Timeout: timeout},
		log:  log,
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type publishJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type myPostedJobsResponse struct {
	Jobs []domain.JobWithApplicants `json:"jobs"`
}

// remoteFailure mirrors the error envelope the marketplace API emits.
type remoteFailure struct {
	Msg string `json:"msg"`
}

// Register creates a new account. Required-field validation is the caller's
// job (it must happen before any network traffic); the gateway only ships
// the payload.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) error {
	return c.do(ctx, "register", http.MethodPost, "/api/register", "", in, nil)
}

// Login exchanges credentials for a bearer token and the resolved user.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var out loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/api/login", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", nil, err
	}
	if out.Token == "" || out.User == nil {
		return "", nil, transportErr("login", fmt.Errorf("incomplete response"))
	}
	return out.Token, out.User, nil
}

// ListWorkers returns every registered worker. This is the only
// unauthenticated read the API exposes.
func (c *Client) ListWorkers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, "list_workers", http.MethodGet, "/api/workers", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListJobs returns open jobs annotated with the caller's application status.
func (c *Client) ListJobs(ctx context.Context, token string) ([]domain.Job, error) {
	var out []domain.Job
	if err := c.do(ctx, "list_jobs", http.MethodGet, "/api/jobs", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostJob publishes a new job owned by the caller. Title and description
// must both be non-empty.
func (c *Client) PostJob(ctx context.Context, token, title, description string) (*domain.Job, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, domain.ErrEmptyJobForm
	}
	var out domain.Job
	err := c.do(ctx, "publish_job", http.MethodPost, "/api/publish-job", token,
		publishJobRequest{Title: title, Description: description}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyToJob records the caller's application to jobID. Duplicate
// applications are rejected server-side, not here.
func (c *Client) ApplyToJob(ctx context.Context, token, jobID string) error {
	return c.do(ctx, "apply_job", http.MethodPost, "/api/apply-job/"+url.PathEscape(jobID), token, struct{}{}, nil)
}

// MyPostedJobs returns the caller's own jobs with their applicant lists.
func (c *Client) MyPostedJobs(ctx context.Context, token string) ([]domain.JobWithApplicants, error) {
	var out myPostedJobsResponse
	if err := c.do(ctx, "my_posted_jobs", http.MethodGet, "/api/my-posted-jobs", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

// do performs one instrumented round trip. A non-empty token is attached as
// a bearer credential. A non-nil out receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, call, method, path, token string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return transportErr(call, err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return transportErr(call, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	metrics.GatewayRequestDuration.WithLabelValues(call).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues(call, "transport_error").Inc()
		c.log.Warn().Err(err).Str("call", call).Msg("marketplace request failed")
		return transportErr(call, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.GatewayRequestsTotal.WithLabelValues(call, "remote_error").Inc()
		var failure remoteFailure
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("call", call).
			Str("msg", failure.Msg).
			Msg("marketplace rejected request")
		return remoteErr(resp.StatusCode, failure.Msg)
	}

	metrics.GatewayRequestsTotal.WithLabelValues(call, "ok").Inc()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return transportErr(call, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
