// Package view holds the per-session dashboard view-models. A view-model
// owns the local list/form state of one screen, triggers gateway calls, and
// folds the results back into that state for rendering.
//
// Fetch lifecycle per view: idle → loading → {ready, error}, and back to
// loading on a refresh or tab switch. Nothing is retried automatically.
//
// Because refreshes can race (rapid tab switching, concurrent requests of
// the same browser session), every fetch is tagged with a monotonically
// increasing sequence number and a completion that is no longer the latest
// issued for the view is discarded instead of overwriting newer state.
package view

// Phase is the fetch lifecycle state of a dashboard view.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)
