// Package launch sequences service startup: an optional deadline-bounded
// UI build followed by the hand-off to the long-running service.
//
// The orchestrator is a small state machine (idle, building, serving,
// terminated) with two hard rules: a failed or timed-out build prevents
// the service from ever starting, and an operator interrupt during the
// build or serve phase is a clean stop, not an error. Build and serve
// are plain function fields so tests can substitute fakes.
package launch
