package repository

import (
	"context"
	"errors"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepo interface {
	GetConfig(ctx context.Context, key string) (*model.SystemConfig, error)
	SetConfig(ctx context.Context, key string, value string) error
	ListConfigs(ctx context.Context) ([]*model.SystemConfig, error)
}

type configRepoImpl struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) ConfigRepo {
	return &configRepoImpl{db: db}
}

func (s *configRepoImpl) GetConfig(ctx context.Context, key string) (*model.SystemConfig, error) {
	cfg := &model.SystemConfig{}
	result := s.db.WithContext(ctx).Where("config_key = ?", key).First(cfg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return cfg, nil
}

func (s *configRepoImpl) SetConfig(ctx context.Context, key string, value string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value", "updated_at"}),
	}).Create(&model.SystemConfig{ConfigKey: key, ConfigValue: value}).Error
}

func (s *configRepoImpl) ListConfigs(ctx context.Context) ([]*model.SystemConfig, error) {
	configs := make([]*model.SystemConfig, 0)
	result := s.db.WithContext(ctx).Find(&configs)
	if result.Error != nil {
		return nil, result.Error
	}
	return configs, nil
}
