package view

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/workling/portal/internal/core/domain"
)

func workerUser() *domain.User {
	return &domain.User{ID: "u1", Name: "A", Role: domain.RoleWorker}
}

func TestWorkerDashboard_Refresh(t *testing.T) {
	gw := &stubGateway{
		listJobsFn: func(_ context.Context, token string) ([]domain.Job, error) {
			if token != "tok123" {
				t.Fatalf("expected session token, got %q", token)
			}
			return []domain.Job{{ID: "j1", Title: "Fix bug"}}, nil
		},
	}
	d := NewWorkerDashboard(gw, loggedInStore(workerUser()))

	if d.Snapshot().Phase != PhaseIdle {
		t.Fatalf("expected idle before first refresh")
	}

	d.Refresh(context.Background())

	snap := d.Snapshot()
	if snap.Phase != PhaseReady {
		t.Fatalf("expected ready, got %s", snap.Phase)
	}
	if len(snap.Jobs) != 1 || snap.Jobs[0].ID != "j1" {
		t.Fatalf("unexpected jobs: %+v", snap.Jobs)
	}
}

func TestWorkerDashboard_Refresh_Error(t *testing.T) {
	boom := errors.New("boom")
	gw := &stubGateway{
		listJobsFn: func(_ context.Context, _ string) ([]domain.Job, error) {
			return nil, boom
		},
	}
	d := NewWorkerDashboard(gw, loggedInStore(workerUser()))

	d.Refresh(context.Background())

	snap := d.Snapshot()
	if snap.Phase != PhaseError {
		t.Fatalf("expected error phase, got %s", snap.Phase)
	}
	if !errors.Is(snap.Err, boom) {
		t.Fatalf("unexpected err: %v", snap.Err)
	}
	if len(snap.Jobs) != 0 {
		t.Fatalf("failed fetch must not leave jobs behind")
	}
}

func TestWorkerDashboard_StaleRefreshDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan []domain.Job)
	var calls int32

	gw := &stubGateway{
		listJobsFn: func(_ context.Context, _ string) ([]domain.Job, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(entered)
				return <-release, nil // first fetch parks until released
			}
			return []domain.Job{{ID: "new"}}, nil
		},
	}
	d := NewWorkerDashboard(gw, loggedInStore(workerUser()))

	done := make(chan struct{})
	go func() {
		d.Refresh(context.Background())
		close(done)
	}()
	<-entered

	// A second refresh supersedes the parked one.
	d.Refresh(context.Background())

	// Let the stale fetch complete with old data.
	release <- []domain.Job{{ID: "old"}}
	<-done

	snap := d.Snapshot()
	if snap.Phase != PhaseReady {
		t.Fatalf("expected ready, got %s", snap.Phase)
	}
	if len(snap.Jobs) != 1 || snap.Jobs[0].ID != "new" {
		t.Fatalf("stale completion overwrote newer state: %+v", snap.Jobs)
	}
}

func TestWorkerDashboard_Apply_FlipsFlagOnSuccessOnly(t *testing.T) {
	applyErr := error(nil)
	gw := &stubGateway{
		listJobsFn: func(_ context.Context, _ string) ([]domain.Job, error) {
			return []domain.Job{{ID: "j1"}, {ID: "j2"}}, nil
		},
		applyFn: func(_ context.Context, _, jobID string) error {
			return applyErr
		},
	}
	d := NewWorkerDashboard(gw, loggedInStore(workerUser()))
	d.Refresh(context.Background())

	// Failure first: the flag must stay down.
	applyErr = errors.New("rejected")
	if err := d.Apply(context.Background(), "j1"); err == nil {
		t.Fatalf("expected apply error")
	}
	if d.Snapshot().Jobs[0].HasApplied {
		t.Fatalf("flag flipped before server confirmation")
	}

	// Success flips exactly the applied job.
	applyErr = nil
	if err := d.Apply(context.Background(), "j1"); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	snap := d.Snapshot()
	if !snap.Jobs[0].HasApplied {
		t.Fatalf("flag not flipped after success")
	}
	if snap.Jobs[1].HasApplied {
		t.Fatalf("wrong job flagged")
	}
}

func TestWorkerDashboard_Apply_DuplicateSkipsNetwork(t *testing.T) {
	var applyCalls int32
	gw := &stubGateway{
		listJobsFn: func(_ context.Context, _ string) ([]domain.Job, error) {
			return []domain.Job{{ID: "j1"}}, nil
		},
		applyFn: func(_ context.Context, _, _ string) error {
			atomic.AddInt32(&applyCalls, 1)
			return nil
		},
	}
	d := NewWorkerDashboard(gw, loggedInStore(workerUser()))
	d.Refresh(context.Background())

	if err := d.Apply(context.Background(), "j1"); err != nil {
		t.Fatalf("first apply returned error: %v", err)
	}
	if err := d.Apply(context.Background(), "j1"); err != nil {
		t.Fatalf("second apply returned error: %v", err)
	}
	if applyCalls != 1 {
		t.Fatalf("expected a single network call, got %d", applyCalls)
	}
}

func TestWorkerDashboard_Apply_RequiresSession(t *testing.T) {
	gw := &stubGateway{}
	d := NewWorkerDashboard(gw, loggedOutStore())

	if err := d.Apply(context.Background(), "j1"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}
