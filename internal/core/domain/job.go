package domain

import (
	"errors"
	"time"
)

var ErrEmptyJobForm = errors.New("title and description are required")

// Job is an open position as seen by a worker. HasApplied is a per-caller
// annotation computed by the remote API; it reflects server state as of the
// last fetch only.
type Job struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   User      `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	HasApplied  bool      `json:"hasApplied"`
}

// JobApplicant is the worker subset an employer sees for each application.
type JobApplicant struct {
	WorkerID     string    `json:"workerId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Rating       *float64  `json:"rating,omitempty"`
	Skills       []string  `json:"skills,omitempty"`
	Certificates []string  `json:"certificates,omitempty"`
	AppliedAt    time.Time `json:"appliedAt"`
}

// JobWithApplicants is one of the caller's own postings together with
// everyone who applied to it.
type JobWithApplicants struct {
	JobID       string         `json:"jobId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Applicants  []JobApplicant `json:"applicants"`
}
