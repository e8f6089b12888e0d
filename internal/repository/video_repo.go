package repository

import (
	"context"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"gorm.io/gorm"
)

type VideoRepo interface {
	ReplaceVideos(ctx context.Context, employeeID string, videos []*model.VideoRecord) error
	ListVideos(ctx context.Context, employeeID string, limit int) ([]*model.VideoRecord, error)
	ListAllVideos(ctx context.Context) ([]*model.VideoRecord, error)
}

type videoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &videoRepoImpl{db: db}
}

// ReplaceVideos 每次同步整体替换该员工的视频列表
func (s *videoRepoImpl) ReplaceVideos(ctx context.Context, employeeID string, videos []*model.VideoRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&model.VideoRecord{}).Error; err != nil {
			return err
		}
		if len(videos) == 0 {
			return nil
		}
		return tx.Create(videos).Error
	})
}

func (s *videoRepoImpl) ListVideos(ctx context.Context, employeeID string, limit int) ([]*model.VideoRecord, error) {
	videos := make([]*model.VideoRecord, 0)
	result := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("video_created DESC").
		Limit(limit).
		Find(&videos)
	if result.Error != nil {
		return nil, result.Error
	}
	return videos, nil
}

func (s *videoRepoImpl) ListAllVideos(ctx context.Context) ([]*model.VideoRecord, error) {
	videos := make([]*model.VideoRecord, 0)
	result := s.db.WithContext(ctx).Find(&videos)
	if result.Error != nil {
		return nil, result.Error
	}
	return videos, nil
}
