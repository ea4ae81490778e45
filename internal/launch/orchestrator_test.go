package launch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"periscope/internal/logging"
)

const stopNotice = "stopping periscope due to interrupt"

func testLogger(t *testing.T, buf *bytes.Buffer) *slog.Logger {
	t.Helper()
	logger, err := logging.New(logging.Options{Format: "console", Writer: buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return logger
}

func TestBuildSuccessHandsOffToService(t *testing.T) {
	var serveCalls atomic.Int32
	orch := &Orchestrator{
		Build: func(ctx context.Context, timeout time.Duration) bool {
			if timeout != DefaultBuildTimeout {
				t.Errorf("expected default timeout, got %s", timeout)
			}
			return true
		},
		Serve: func(ctx context.Context, workers int) error {
			serveCalls.Add(1)
			return nil
		},
	}

	if err := orch.Run(context.Background(), Options{Build: true}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := serveCalls.Load(); got != 1 {
		t.Fatalf("expected service entry point invoked exactly once, got %d", got)
	}
	if orch.State() != StateTerminated {
		t.Fatalf("expected terminated state, got %s", orch.State())
	}
}

func TestBuildFailureGatesService(t *testing.T) {
	var serveCalls atomic.Int32
	orch := &Orchestrator{
		Build: func(context.Context, time.Duration) bool { return false },
		Serve: func(context.Context, int) error {
			serveCalls.Add(1)
			return nil
		},
	}

	err := orch.Run(context.Background(), Options{Build: true})
	if !errors.Is(err, ErrBuildFailed) {
		t.Fatalf("expected ErrBuildFailed, got %v", err)
	}
	if serveCalls.Load() != 0 {
		t.Fatal("service must never start after a failed build")
	}
}

func TestNoBuildSkipsBuildStep(t *testing.T) {
	orch := &Orchestrator{
		Build: func(context.Context, time.Duration) bool {
			t.Error("build step must not run when not requested")
			return false
		},
		Serve: func(ctx context.Context, workers int) error {
			if workers != 4 {
				t.Errorf("expected workers passed through, got %d", workers)
			}
			return nil
		},
	}
	if err := orch.Run(context.Background(), Options{Workers: 4}); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestInterruptWhileServingIsCleanStop(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())

	orch := &Orchestrator{
		Serve: func(ctx context.Context, workers int) error {
			<-ctx.Done()
			return ctx.Err()
		},
		Logger: testLogger(t, &buf),
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	if err := orch.Run(ctx, Options{}); err != nil {
		t.Fatalf("interrupted stop must not be an error, got %v", err)
	}
	if got := strings.Count(buf.String(), stopNotice); got != 1 {
		t.Fatalf("expected exactly one stop notice, got %d in %q", got, buf.String())
	}
}

func TestInterruptMessageIsReported(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancelCause(context.Background())

	orch := &Orchestrator{
		Serve: func(ctx context.Context, workers int) error {
			<-ctx.Done()
			return ctx.Err()
		},
		Logger: testLogger(t, &buf),
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel(errors.New("shutdown requested by operator"))
	}()

	if err := orch.Run(ctx, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "shutdown requested by operator") {
		t.Fatalf("expected interrupt message in output: %q", out)
	}
	if got := strings.Count(out, stopNotice); got != 1 {
		t.Fatalf("expected exactly one stop notice, got %d", got)
	}
}

func TestInterruptDuringBuildIsCleanStop(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())

	var serveCalls atomic.Int32
	orch := &Orchestrator{
		Build: func(ctx context.Context, timeout time.Duration) bool {
			<-ctx.Done()
			return false
		},
		Serve: func(context.Context, int) error {
			serveCalls.Add(1)
			return nil
		},
		Logger: testLogger(t, &buf),
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	if err := orch.Run(ctx, Options{Build: true}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if serveCalls.Load() != 0 {
		t.Fatal("service must not start after an interrupted build")
	}
	if got := strings.Count(buf.String(), stopNotice); got != 1 {
		t.Fatalf("expected exactly one stop notice, got %d", got)
	}
}

func TestBuildRequestedWithoutBuildStepFails(t *testing.T) {
	var serveCalls atomic.Int32
	orch := &Orchestrator{
		Serve: func(context.Context, int) error {
			serveCalls.Add(1)
			return nil
		},
	}

	err := orch.Run(context.Background(), Options{Build: true})
	if err == nil || !strings.Contains(err.Error(), "no build step configured") {
		t.Fatalf("expected missing build step error, got %v", err)
	}
	if serveCalls.Load() != 0 {
		t.Fatal("service must not start when the build step is missing")
	}
	if orch.State() != StateTerminated {
		t.Fatalf("expected terminated state, got %s", orch.State())
	}
}

func TestServiceErrorPassesThrough(t *testing.T) {
	serveErr := errors.New("listen failed")
	orch := &Orchestrator{
		Serve: func(context.Context, int) error { return serveErr },
	}
	if err := orch.Run(context.Background(), Options{}); !errors.Is(err, serveErr) {
		t.Fatalf("expected service error to pass through, got %v", err)
	}
}
