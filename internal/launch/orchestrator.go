package launch

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"periscope/internal/logging"
)

// State identifies the orchestrator's position in the startup sequence.
type State int32

const (
	StateIdle State = iota
	StateBuilding
	StateServing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateServing:
		return "serving"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// DefaultBuildTimeout bounds the pre-start UI build unless overridden.
const DefaultBuildTimeout = 180 * time.Second

// ErrBuildFailed indicates the UI build did not complete successfully
// within its deadline; the service is never started in that case.
var ErrBuildFailed = errors.New("UI build failed or timed out; service not started")

// BuildFunc runs the asset build and reports completion within the deadline.
type BuildFunc func(ctx context.Context, timeout time.Duration) bool

// ServeFunc runs the service until ctx is cancelled. A worker count of
// zero lets the service pick its own default.
type ServeFunc func(ctx context.Context, workers int) error

// Options holds the parameters of one start invocation.
type Options struct {
	Build        bool
	BuildTimeout time.Duration
	Workers      int
}

// Orchestrator gates service launch behind an optional UI build and
// maps interrupts to a clean shutdown.
type Orchestrator struct {
	Build  BuildFunc
	Serve  ServeFunc
	Logger *slog.Logger

	state atomic.Int32
}

// State returns the orchestrator's current state.
func (o *Orchestrator) State() State { return State(o.state.Load()) }

func (o *Orchestrator) setState(s State) { o.state.Store(int32(s)) }

// Run executes the startup sequence. It returns nil on a normal or
// operator-interrupted stop, ErrBuildFailed when the build gate closes,
// and the service's own error otherwise.
func (o *Orchestrator) Run(ctx context.Context, opts Options) error {
	logger := o.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	o.setState(StateIdle)

	if opts.Build {
		if o.Build == nil {
			o.setState(StateTerminated)
			return errors.New("build requested but no build step configured")
		}
		o.setState(StateBuilding)
		timeout := opts.BuildTimeout
		if timeout <= 0 {
			timeout = DefaultBuildTimeout
		}
		complete := o.Build(signalCtx, timeout)
		if signalCtx.Err() != nil {
			o.setState(StateTerminated)
			o.reportInterrupt(logger, signalCtx)
			return nil
		}
		if !complete {
			o.setState(StateTerminated)
			return ErrBuildFailed
		}
	}

	o.setState(StateServing)
	err := o.Serve(signalCtx, opts.Workers)
	o.setState(StateTerminated)

	if signalCtx.Err() != nil {
		o.reportInterrupt(logger, signalCtx)
		return nil
	}
	return err
}

// reportInterrupt logs the interrupt cause when it carries a message
// beyond the bare cancellation sentinel, then emits exactly one fixed
// stop notice.
func (o *Orchestrator) reportInterrupt(logger *slog.Logger, ctx context.Context) {
	cause := context.Cause(ctx)
	if cause != nil && !errors.Is(cause, context.Canceled) {
		if msg := cause.Error(); len(msg) > 1 {
			logger.Warn(msg)
		}
	}
	logger.Warn("stopping periscope due to interrupt")
}
