package view

import (
	"context"
	"sync"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/core/ports"
	"github.com/workling/portal/internal/metrics"
	"github.com/workling/portal/internal/session"
)

// WorkerDashboard is the view-model behind the worker's single job list.
type WorkerDashboard struct {
	mu   sync.Mutex
	gw   ports.Gateway
	sess *session.Store

	seq   uint64
	phase Phase
	jobs  []domain.Job
	err   error
}

// WorkerSnapshot is an immutable copy of the dashboard state for rendering.
type WorkerSnapshot struct {
	Phase Phase
	Jobs  []domain.Job
	Err   error
}

func NewWorkerDashboard(gw ports.Gateway, sess *session.Store) *WorkerDashboard {
	return &WorkerDashboard{gw: gw, sess: sess, phase: PhaseIdle}
}

// Refresh fetches the open job list. A completion that is no longer the
// latest issued fetch is discarded.
func (d *WorkerDashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.phase = PhaseLoading
	d.jobs = nil
	d.err = nil
	token := d.sess.Token()
	d.mu.Unlock()

	jobs, err := d.gw.ListJobs(ctx, token)

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		metrics.StaleFetchesDiscarded.WithLabelValues("worker").Inc()
		return
	}
	if err != nil {
		d.phase = PhaseError
		d.err = err
		return
	}
	d.phase = PhaseReady
	d.jobs = jobs
}

// Apply submits an application for jobID. The local hasApplied flag flips
// only in the success continuation of the network call; a failed apply
// leaves the job untouched.
func (d *WorkerDashboard) Apply(ctx context.Context, jobID string) error {
	token := d.sess.Token()
	if token == "" {
		return domain.ErrNoSession
	}
	if d.alreadyApplied(jobID) {
		// The UI disables the button, but a direct request can still race
		// it. Let the remote remain the authority on duplicates; this
		// check only saves the round trip for the common case.
		return nil
	}

	if err := d.gw.ApplyToJob(ctx, token, jobID); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.jobs {
		if d.jobs[i].ID == jobID {
			d.jobs[i].HasApplied = true
			break
		}
	}
	return nil
}

// Snapshot returns a copy of the current state for rendering.
func (d *WorkerDashboard) Snapshot() WorkerSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	jobs := make([]domain.Job, len(d.jobs))
	copy(jobs, d.jobs)
	return WorkerSnapshot{Phase: d.phase, Jobs: jobs, Err: d.err}
}

func (d *WorkerDashboard) alreadyApplied(jobID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.jobs {
		if d.jobs[i].ID == jobID {
			return d.jobs[i].HasApplied
		}
	}
	return false
}
