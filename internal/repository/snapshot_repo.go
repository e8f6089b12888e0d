package repository

import (
	"context"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo interface {
	SaveSnapshots(ctx context.Context, snapshots []*model.MetricSnapshot) error
	GetHistory(ctx context.Context, employeeID string, days int) ([]*model.MetricSnapshot, error)
	ListSnapshots(ctx context.Context) ([]*model.MetricSnapshot, error)
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return &snapshotRepoImpl{db: db}
}

// SaveSnapshots 按 (员工, 类型, 日期) upsert，同一天重复同步覆盖当日值
func (s *snapshotRepoImpl) SaveSnapshots(ctx context.Context, snapshots []*model.MetricSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "data_type"}, {Name: "data_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"data_value"}),
	}).Create(snapshots).Error
}

func (s *snapshotRepoImpl) GetHistory(ctx context.Context, employeeID string, days int) ([]*model.MetricSnapshot, error) {
	snapshots := make([]*model.MetricSnapshot, 0)
	result := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("data_date >= ?", time.Now().AddDate(0, 0, -days)).
		Order("data_date ASC").
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}

func (s *snapshotRepoImpl) ListSnapshots(ctx context.Context) ([]*model.MetricSnapshot, error) {
	snapshots := make([]*model.MetricSnapshot, 0)
	result := s.db.WithContext(ctx).Order("data_date ASC").Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}
