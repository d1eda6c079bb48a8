package view

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/core/ports"
	"github.com/workling/portal/internal/session"
)

// stubGateway implements ports.Gateway with pluggable functions.
type stubGateway struct {
	registerFn     func(ctx context.Context, in ports.RegisterInput) error
	loginFn        func(ctx context.Context, email, password string) (string, *domain.User, error)
	listWorkersFn  func(ctx context.Context) ([]domain.User, error)
	listJobsFn     func(ctx context.Context, token string) ([]domain.Job, error)
	postJobFn      func(ctx context.Context, token, title, description string) (*domain.Job, error)
	applyFn        func(ctx context.Context, token, jobID string) error
	myPostedJobsFn func(ctx context.Context, token string) ([]domain.JobWithApplicants, error)
}

func (s *stubGateway) Register(ctx context.Context, in ports.RegisterInput) error {
	return s.registerFn(ctx, in)
}

func (s *stubGateway) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubGateway) ListWorkers(ctx context.Context) ([]domain.User, error) {
	return s.listWorkersFn(ctx)
}

func (s *stubGateway) ListJobs(ctx context.Context, token string) ([]domain.Job, error) {
	return s.listJobsFn(ctx, token)
}

func (s *stubGateway) PostJob(ctx context.Context, token, title, description string) (*domain.Job, error) {
	return s.postJobFn(ctx, token, title, description)
}

func (s *stubGateway) ApplyToJob(ctx context.Context, token, jobID string) error {
	return s.applyFn(ctx, token, jobID)
}

func (s *stubGateway) MyPostedJobs(ctx context.Context, token string) ([]domain.JobWithApplicants, error) {
	return s.myPostedJobsFn(ctx, token)
}

// loggedInStore returns a session already authenticated as user.
func loggedInStore(user *domain.User) *session.Store {
	s := session.NewStore(nil, zerolog.Nop())
	_ = s.Login(context.Background(), "tok123", user)
	return s
}

// loggedOutStore returns an empty session.
func loggedOutStore() *session.Store {
	return session.NewStore(nil, zerolog.Nop())
}
