package cron

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Sweeper evicts idle in-process session state.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// NewSessionSweepJob runs every sweeper, even when an earlier one fails.
func NewSessionSweepJob(sweepers ...Sweeper) (Job, error) {
	job := &sessionSweepJob{}
	for _, s := range sweepers {
		if s != nil {
			job.sweepers = append(job.sweepers, s)
		}
	}
	if len(job.sweepers) == 0 {
		return nil, fmt.Errorf("at least one sweeper required")
	}
	return job, nil
}

type sessionSweepJob struct {
	sweepers []Sweeper
}

func (j *sessionSweepJob) Name() string { return "session-sweep" }

func (j *sessionSweepJob) Run(ctx context.Context) (int64, error) {
	var (
		total int64
		errs  error
	)
	for _, s := range j.sweepers {
		n, err := s.Sweep(ctx)
		total += int64(n)
		errs = multierr.Append(errs, err)
	}
	return total, errs
}
