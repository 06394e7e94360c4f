package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/modeststyle-backend/pkg/config"
	"github.com/angelmondragon/modeststyle-backend/pkg/db"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

// MaybeRun applies pending migrations at boot unless MODESTSTYLE_DB_AUTO_MIGRATE is off.
func MaybeRun(ctx context.Context, cfg config.DBConfig, logg *logger.Logger, client *db.Client) error {
	if !cfg.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"driver": cfg.Driver, "dir": Dir})
	logg.Info(ctx, "running goose migrations")
	if err := Run(ctx, sqlDB, cfg.Driver, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "goose migrations completed")
	return nil
}
