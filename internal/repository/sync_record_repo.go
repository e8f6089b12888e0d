package repository

import (
	"context"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"gorm.io/gorm"
)

type SyncRecordRepo interface {
	CreateSyncRecord(ctx context.Context, record *model.SyncRecord) error
	FinishSyncRecord(ctx context.Context, record *model.SyncRecord) error
	ListSyncRecords(ctx context.Context, limit int) ([]*model.SyncRecord, error)
}

type syncRecordRepoImpl struct {
	db *gorm.DB
}

func NewSyncRecordRepo(db *gorm.DB) SyncRecordRepo {
	return &syncRecordRepoImpl{db: db}
}

func (s *syncRecordRepoImpl) CreateSyncRecord(ctx context.Context, record *model.SyncRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// FinishSyncRecord 完成 running -> success|failed 的一次性状态迁移
func (s *syncRecordRepoImpl) FinishSyncRecord(ctx context.Context, record *model.SyncRecord) error {
	return s.db.WithContext(ctx).
		Model(&model.SyncRecord{}).
		Where("id = ?", record.ID).
		Select("sync_status", "end_time", "success_count", "failed_count", "error_message").
		Updates(record).Error
}

func (s *syncRecordRepoImpl) ListSyncRecords(ctx context.Context, limit int) ([]*model.SyncRecord, error) {
	records := make([]*model.SyncRecord, 0)
	query := s.db.WithContext(ctx).Order("start_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}
