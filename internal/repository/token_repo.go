package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepo interface {
	SaveToken(ctx context.Context, token *model.AuthToken) error
	GetToken(ctx context.Context, employeeID string) (*model.AuthToken, error)
	DeleteToken(ctx context.Context, employeeID string) error
	ListTokens(ctx context.Context) ([]*model.AuthToken, error)
}

type tokenRepoImpl struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) TokenRepo {
	return &tokenRepoImpl{db: db}
}

// SaveToken 按员工维度 upsert，重新授权时整行覆盖（含时间戳），
// 保证每个员工至多一条令牌。CreatedAt 是过期判定的基准，
// 仅在未显式给定时取当前时间（数据导入时保留原值）
func (s *tokenRepoImpl) SaveToken(ctx context.Context, token *model.AuthToken) error {
	now := time.Now()
	if token.CreatedAt.IsZero() {
		token.CreatedAt = now
	}
	token.UpdatedAt = now
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token", "refresh_token", "expires_in", "refresh_expires_in",
			"scope", "open_id", "created_at", "updated_at",
		}),
	}).Create(token).Error
}

// GetToken 纯读取，不做过期判断，调用方自行套用过期规则
func (s *tokenRepoImpl) GetToken(ctx context.Context, employeeID string) (*model.AuthToken, error) {
	token := &model.AuthToken{}
	result := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return token, nil
}

func (s *tokenRepoImpl) DeleteToken(ctx context.Context, employeeID string) error {
	return s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&model.AuthToken{}).Error
}

func (s *tokenRepoImpl) ListTokens(ctx context.Context) ([]*model.AuthToken, error) {
	tokens := make([]*model.AuthToken, 0)
	result := s.db.WithContext(ctx).Find(&tokens)
	if result.Error != nil {
		return nil, result.Error
	}
	return tokens, nil
}
