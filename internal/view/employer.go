package view

import (
	"context"
	"sync"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/core/ports"
	"github.com/workling/portal/internal/metrics"
	"github.com/workling/portal/internal/session"
)

// Tab identifies which employer screen is active.
type Tab string

const (
	TabWorkers    Tab = "workers"
	TabApplicants Tab = "applicants"
)

// EmployerDashboard is the view-model behind the employer's two tabs:
// the public worker listing and the caller's own jobs with applicants.
// A tab switch always re-fetches; nothing is cached between switches.
type EmployerDashboard struct {
	mu   sync.Mutex
	gw   ports.Gateway
	sess *session.Store

	seq        uint64
	tab        Tab
	phase      Phase
	workers    []domain.User
	applicants []domain.JobWithApplicants
	err        error
}

// EmployerSnapshot is an immutable copy of the dashboard state for rendering.
// Only the slice matching Tab is populated.
type EmployerSnapshot struct {
	Tab        Tab
	Phase      Phase
	Workers    []domain.User
	Applicants []domain.JobWithApplicants
	Err        error
}

func NewEmployerDashboard(gw ports.Gateway, sess *session.Store) *EmployerDashboard {
	return &EmployerDashboard{gw: gw, sess: sess, tab: TabWorkers, phase: PhaseIdle}
}

// SwitchTab activates tab and fetches its data. Switching to the already
// active tab still re-fetches, matching the no-cache contract.
func (d *EmployerDashboard) SwitchTab(ctx context.Context, tab Tab) {
	if tab != TabWorkers && tab != TabApplicants {
		tab = TabWorkers
	}
	d.mu.Lock()
	d.tab = tab
	d.mu.Unlock()
	d.Refresh(ctx)
}

// Refresh fetches the active tab's data. A completion superseded by a newer
// fetch (for either tab) is discarded so a slow response can never clobber
// the tab the user has since switched to.
func (d *EmployerDashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	tab := d.tab
	d.phase = PhaseLoading
	d.workers = nil
	d.applicants = nil
	d.err = nil
	token := d.sess.Token()
	d.mu.Unlock()

	var (
		workers    []domain.User
		applicants []domain.JobWithApplicants
		err        error
	)
	if tab == TabWorkers {
		workers, err = d.gw.ListWorkers(ctx)
	} else {
		applicants, err = d.gw.MyPostedJobs(ctx, token)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		metrics.StaleFetchesDiscarded.WithLabelValues("employer_" + string(tab)).Inc()
		return
	}
	if err != nil {
		d.phase = PhaseError
		d.err = err
		return
	}
	d.phase = PhaseReady
	d.workers = workers
	d.applicants = applicants
}

// CreateJob publishes a new job. When the applicants tab is active the list
// is re-fetched to show the new (empty) posting; the workers tab is left
// alone since job creation does not affect it.
func (d *EmployerDashboard) CreateJob(ctx context.Context, title, description string) error {
	token := d.sess.Token()
	if token == "" {
		return domain.ErrNoSession
	}

	if _, err := d.gw.PostJob(ctx, token, title, description); err != nil {
		return err
	}

	d.mu.Lock()
	onApplicants := d.tab == TabApplicants
	d.mu.Unlock()
	if onApplicants {
		d.Refresh(ctx)
	}
	return nil
}

// ActiveTab returns the currently selected tab.
func (d *EmployerDashboard) ActiveTab() Tab {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tab
}

// Snapshot returns a copy of the current state for rendering.
func (d *EmployerDashboard) Snapshot() EmployerSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	snap := EmployerSnapshot{Tab: d.tab, Phase: d.phase, Err: d.err}
	snap.Workers = make([]domain.User, len(d.workers))
	copy(snap.Workers, d.workers)
	snap.Applicants = make([]domain.JobWithApplicants, len(d.applicants))
	copy(snap.Applicants, d.applicants)
	return snap
}
