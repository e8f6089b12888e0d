package repository

import (
	"context"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"gorm.io/gorm"
)

type MaintenanceRepo interface {
	ClearAllData(ctx context.Context) error
}

type maintenanceRepoImpl struct {
	db *gorm.DB
}

func NewMaintenanceRepo(db *gorm.DB) MaintenanceRepo {
	return &maintenanceRepoImpl{db: db}
}

// ClearAllData 清空全部业务表，仅保留表结构
func (s *maintenanceRepoImpl) ClearAllData(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.VideoRecord{},
			&model.MetricSnapshot{},
			&model.SyncRecord{},
			&model.AuthToken{},
			&model.Employee{},
			&model.SystemConfig{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
