package ports

import (
	"context"

	"github.com/workling/portal/internal/core/domain"
)

// RegisterInput is the DTO passed from a form or CLI flag set to the gateway.
// Price, Skills and Certificates are only meaningful for the worker role.
type RegisterInput struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required"`
	Role         string   `json:"role" validate:"required,oneof=worker employer"`
	Price        *float64 `json:"price,omitempty"`
	Skills       []string `json:"skills"`
	Certificates []string `json:"certificates"`
}

// Gateway is the one-shot request surface of the remote marketplace API.
// Every method performs a single HTTP round trip; there is no retry and no
// caching. Authenticated calls take the bearer token explicitly.
type Gateway interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ListWorkers(ctx context.Context) ([]domain.User, error)
	ListJobs(ctx context.Context, token string) ([]domain.Job, error)
	PostJob(ctx context.Context, token, title, description string) (*domain.Job, error)
	ApplyToJob(ctx context.Context, token, jobID string) error
	MyPostedJobs(ctx context.Context, token string) ([]domain.JobWithApplicants, error)
}
