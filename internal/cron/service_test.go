package cron

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
	"github.com/angelmondragon/modeststyle-backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type fakeLock struct {
	acquired bool
}

func (f *fakeLock) Acquire(context.Context) (bool, error) {
	if f.acquired {
		return false, nil
	}
	f.acquired = true
	return true, nil
}

func (f *fakeLock) Release(context.Context) error { f.acquired = false; return nil }

type testJob struct {
	name    string
	removed int64
	err     error
	runs    int
}

func (t *testJob) Name() string { return t.name }

func (t *testJob) Run(context.Context) (int64, error) {
	t.runs++
	return t.removed, t.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "housekeeping-test", Output: io.Discard})
}

func TestServiceRunCycleRunsAllJobsEvenOnFailure(t *testing.T) {
	success := &testJob{name: "success", removed: 3}
	failure := &testJob{name: "fail", err: errors.New("boom")}
	reg := prometheus.NewRegistry()
	service, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(success, failure),
		Lock:     &fakeLock{},
		Metrics:  metrics.NewJobMetrics(reg),
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}
	if err := service.RunOnce(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if success.runs != 1 || failure.runs != 1 {
		t.Fatalf("expected each job to run once, got %d and %d", success.runs, failure.runs)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var removed float64
	for _, mf := range families {
		if mf.GetName() == "modeststyle_housekeeping_entries_removed_total" {
			for _, m := range mf.GetMetric() {
				removed += m.GetCounter().GetValue()
			}
		}
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed entries recorded, got %v", removed)
	}
}

func TestServiceSkipsCycleWhenLockHeld(t *testing.T) {
	job := &testJob{name: "job"}
	lock := &fakeLock{acquired: true}
	service, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(job),
		Lock:     lock,
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}
	if err := service.RunOnce(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if job.runs != 0 {
		t.Fatalf("expected job to be skipped, ran %d", job.runs)
	}
}

func TestServiceRunsLocalJobsWhenLockHeldElsewhere(t *testing.T) {
	sweep := &testJob{name: "session-sweep", removed: 4}
	purge := &testJob{name: "snapshot-purge"}
	service, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(purge),
		Local:    NewRegistry(sweep),
		Lock:     &fakeLock{acquired: true},
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := service.RunOnce(context.Background()); err != nil {
			t.Fatalf("run cycle: %v", err)
		}
	}
	if sweep.runs != 3 {
		t.Fatalf("expected the in-process sweep on every cycle, ran %d", sweep.runs)
	}
	if purge.runs != 0 {
		t.Fatalf("expected the shared purge to wait for the lock, ran %d", purge.runs)
	}
}

func TestServiceSkipsLockWithoutSharedJobs(t *testing.T) {
	sweep := &testJob{name: "session-sweep"}
	lock := &erroringLock{}
	service, err := NewService(ServiceParams{
		Logger: testLogger(),
		Local:  NewRegistry(sweep),
		Lock:   lock,
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}
	if err := service.RunOnce(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if lock.calls != 0 || sweep.runs != 1 {
		t.Fatalf("expected sweep without touching the lock, calls=%d runs=%d", lock.calls, sweep.runs)
	}
}

type erroringLock struct{ calls int }

func (l *erroringLock) Acquire(context.Context) (bool, error) {
	l.calls++
	return false, errors.New("redis down")
}

func (l *erroringLock) Release(context.Context) error { return nil }

func TestServiceRequiresLock(t *testing.T) {
	if _, err := NewService(ServiceParams{Logger: testLogger()}); err == nil {
		t.Fatal("expected missing lock to fail")
	}
}

func TestServiceRunStopsOnCancel(t *testing.T) {
	job := &testJob{name: "job"}
	service, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(job),
		Lock:     &LocalLock{},
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := service.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if job.runs != 1 {
		t.Fatalf("expected the immediate cycle to run once, ran %d", job.runs)
	}
}
