package models

import "time"

// ClientSnapshot holds the serialized cart or wishlist state for one browser session.
type ClientSnapshot struct {
	Namespace string     `gorm:"column:namespace;primaryKey;size:64"`
	OwnerID   string     `gorm:"column:owner_id;primaryKey;size:64"`
	Payload   []byte     `gorm:"column:payload;not null"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index:client_snapshots_expires_at_idx"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (ClientSnapshot) TableName() string {
	return "client_snapshots"
}
