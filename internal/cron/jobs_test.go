package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgredis "github.com/angelmondragon/modeststyle-backend/pkg/redis"
)

type fakePurger struct {
	deleted int64
	err     error
}

func (f *fakePurger) PurgeExpired(context.Context) (int64, error) { return f.deleted, f.err }

type fakeSweeper struct {
	n   int
	err error
	ran bool
}

func (f *fakeSweeper) Sweep(context.Context) (int, error) {
	f.ran = true
	return f.n, f.err
}

func TestSnapshotPurgeJob(t *testing.T) {
	job, err := NewSnapshotPurgeJob(SnapshotPurgeJobParams{Logger: testLogger(), Store: &fakePurger{deleted: 7}})
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	removed, err := job.Run(context.Background())
	if err != nil || removed != 7 {
		t.Fatalf("expected 7 removed, got %d (%v)", removed, err)
	}

	failing, _ := NewSnapshotPurgeJob(SnapshotPurgeJobParams{Logger: testLogger(), Store: &fakePurger{err: errors.New("db down")}})
	if _, err := failing.Run(context.Background()); err == nil {
		t.Fatal("expected purge error")
	}
}

func TestSessionSweepJobRunsAllSweepers(t *testing.T) {
	first := &fakeSweeper{n: 2, err: errors.New("boom")}
	second := &fakeSweeper{n: 3}
	job, err := NewSessionSweepJob(first, nil, second)
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	removed, err := job.Run(context.Background())
	if err == nil {
		t.Fatal("expected the first sweeper's error")
	}
	if !second.ran || removed != 5 {
		t.Fatalf("expected both sweepers to run, removed=%d", removed)
	}

	if _, err := NewSessionSweepJob(); err == nil {
		t.Fatal("expected error without sweepers")
	}
}

type fakeRedis struct {
	values map[string]string
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := f.values[key]; ok {
		return false, nil
	}
	f.values[key] = value.(string)
	return true, nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", pkgredis.ErrNotFound
	}
	return v, nil
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func TestRedisLockSingleOwner(t *testing.T) {
	store := &fakeRedis{values: map[string]string{}}
	first, err := NewRedisLock(store, "ms:lock:housekeeping", time.Minute)
	if err != nil {
		t.Fatalf("new lock: %v", err)
	}
	second, _ := NewRedisLock(store, "ms:lock:housekeeping", time.Minute)

	ctx := context.Background()
	if ok, _ := first.Acquire(ctx); !ok {
		t.Fatal("first acquire should win")
	}
	if ok, _ := second.Acquire(ctx); ok {
		t.Fatal("second acquire should lose")
	}
	if err := second.Release(ctx); err != nil {
		t.Fatalf("release by non-owner: %v", err)
	}
	if _, ok := store.values["ms:lock:housekeeping"]; !ok {
		t.Fatal("non-owner must not release the lock")
	}
	if err := first.Release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ok, _ := second.Acquire(ctx); !ok {
		t.Fatal("lock should be free after owner release")
	}
}

func TestLocalLock(t *testing.T) {
	var lock LocalLock
	ctx := context.Background()
	if ok, _ := lock.Acquire(ctx); !ok {
		t.Fatal("expected acquire")
	}
	if ok, _ := lock.Acquire(ctx); ok {
		t.Fatal("expected second acquire to fail")
	}
	_ = lock.Release(ctx)
	if ok, _ := lock.Acquire(ctx); !ok {
		t.Fatal("expected acquire after release")
	}
}
