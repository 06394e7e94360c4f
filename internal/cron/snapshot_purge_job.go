package cron

import (
	"context"
	"fmt"

	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

type snapshotPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type SnapshotPurgeJobParams struct {
	Logger *logger.Logger
	Store  snapshotPurger
}

// NewSnapshotPurgeJob deletes cart and wishlist snapshots past their expiry.
func NewSnapshotPurgeJob(params SnapshotPurgeJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	return &snapshotPurgeJob{logg: params.Logger, store: params.Store}, nil
}

type snapshotPurgeJob struct {
	logg  *logger.Logger
	store snapshotPurger
}

func (j *snapshotPurgeJob) Name() string { return "snapshot-purge" }

func (j *snapshotPurgeJob) Run(ctx context.Context) (int64, error) {
	deleted, err := j.store.PurgeExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("snapshot purge: %w", err)
	}
	return deleted, nil
}
