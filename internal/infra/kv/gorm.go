package kv

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one collection value in the kv_entries table.
type Entry struct {
	Key       string         `gorm:"type:varchar(128);primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string { return "kv_entries" }

// GormStore keeps each collection as one row, upserted on every write.
type GormStore struct {
	db  *gorm.DB
	ns  string
	log *zap.Logger
}

func NewGormStore(db *gorm.DB, namespace string, log *zap.Logger) *GormStore {
	return &GormStore{db: db, ns: namespace, log: log}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool) {
	var e Entry
	if err := s.db.WithContext(ctx).First(&e, "key = ?", s.ns+key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Sugar().Warnw("store read", "key", key, "err", err)
		}
		return nil, false
	}
	return []byte(e.Value), true
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	e := Entry{Key: s.ns + key, Value: datatypes.JSON(value)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}
