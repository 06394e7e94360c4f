package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/angelmondragon/modeststyle-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps snapshots in the client_snapshots table.
type GormStore struct {
	conn *gorm.DB
	ttl  time.Duration
	now  func() time.Time
}

func NewGormStore(db *gorm.DB, ttl time.Duration) (*GormStore, error) {
	if db == nil {
		return nil, errors.New("gorm db required")
	}
	return &GormStore{conn: db, ttl: ttl, now: time.Now}, nil
}

func (s *GormStore) db(ctx context.Context) *gorm.DB {
	return s.conn.WithContext(ctx)
}

func (s *GormStore) Load(ctx context.Context, namespace, owner string) ([]byte, bool, error) {
	if err := validateKey(namespace, owner); err != nil {
		return nil, false, err
	}

	var row models.ClientSnapshot
	err := s.db(ctx).
		Where("namespace = ? AND owner_id = ?", namespace, owner).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if row.ExpiresAt != nil && s.now().After(*row.ExpiresAt) {
		return nil, false, nil
	}
	return row.Payload, true, nil
}

// Save upserts the snapshot; concurrent writers resolve last-writer-wins.
func (s *GormStore) Save(ctx context.Context, namespace, owner string, payload []byte) error {
	if err := validateKey(namespace, owner); err != nil {
		return err
	}

	row := models.ClientSnapshot{
		Namespace: namespace,
		OwnerID:   owner,
		Payload:   payload,
	}
	if s.ttl > 0 {
		expires := s.now().Add(s.ttl)
		row.ExpiresAt = &expires
	}

	return s.db(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at", "updated_at"}),
	}).Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, namespace, owner string) error {
	if err := validateKey(namespace, owner); err != nil {
		return err
	}
	return s.db(ctx).
		Where("namespace = ? AND owner_id = ?", namespace, owner).
		Delete(&models.ClientSnapshot{}).Error
}

// PurgeExpired removes rows whose TTL has elapsed.
func (s *GormStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", s.now()).
		Delete(&models.ClientSnapshot{})
	return res.RowsAffected, res.Error
}
