package repository

import (
	"context"
	"errors"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"gorm.io/gorm"
)

// EmployeeTotals 员工指标汇总
type EmployeeTotals struct {
	TotalEmployees      int64 `json:"total_employees"`
	AuthorizedEmployees int64 `json:"authorized_employees"`
	TotalFans           int64 `json:"total_fans"`
	TotalLikes          int64 `json:"total_likes"`
	TotalComments       int64 `json:"total_comments"`
	TotalShares         int64 `json:"total_shares"`
	TotalHomePV         int64 `json:"total_home_pv"`
	TotalVideos         int64 `json:"total_videos"`
}

type EmployeeRepo interface {
	GetEmployeeByID(ctx context.Context, id string) (*model.Employee, error)
	GetEmployeeByAccount(ctx context.Context, douyinAccount string) (*model.Employee, error)
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
	ListEmployeesByAuthStatus(ctx context.Context, status string) ([]*model.Employee, error)
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	UpdateEmployeeProfile(ctx context.Context, employee *model.Employee) error
	UpdateAuthStatus(ctx context.Context, id string, status string) error
	UpdateSyncResult(ctx context.Context, employee *model.Employee) error
	DeleteEmployee(ctx context.Context, id string) (int64, error)
	GetEmployeeTotals(ctx context.Context) (*EmployeeTotals, error)
}

type employeeRepoImpl struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepo {
	return &employeeRepoImpl{db: db}
}

func (s *employeeRepoImpl) GetEmployeeByID(ctx context.Context, id string) (*model.Employee, error) {
	employee := &model.Employee{}
	result := s.db.WithContext(ctx).Where("id = ?", id).First(employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return employee, nil
}

func (s *employeeRepoImpl) GetEmployeeByAccount(ctx context.Context, douyinAccount string) (*model.Employee, error) {
	employee := &model.Employee{}
	result := s.db.WithContext(ctx).Where("douyin_account = ?", douyinAccount).First(employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return employee, nil
}

func (s *employeeRepoImpl) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	employees := make([]*model.Employee, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&employees)
	if result.Error != nil {
		return nil, result.Error
	}
	return employees, nil
}

func (s *employeeRepoImpl) ListEmployeesByAuthStatus(ctx context.Context, status string) ([]*model.Employee, error) {
	employees := make([]*model.Employee, 0)
	result := s.db.WithContext(ctx).
		Where("auth_status = ?", status).
		Order("created_at DESC").
		Find(&employees)
	if result.Error != nil {
		return nil, result.Error
	}
	return employees, nil
}

func (s *employeeRepoImpl) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	return s.db.WithContext(ctx).Create(employee).Error
}

// UpdateEmployeeProfile 只更新档案类字段，计数器由同步流程单独维护
func (s *employeeRepoImpl) UpdateEmployeeProfile(ctx context.Context, employee *model.Employee) error {
	return s.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", employee.ID).
		Select("name", "department", "position", "douyin_account").
		Updates(employee).Error
}

func (s *employeeRepoImpl) UpdateAuthStatus(ctx context.Context, id string, status string) error {
	return s.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", id).
		Update("auth_status", status).Error
}

// UpdateSyncResult 写回同步得到的计数器与最后同步时间
func (s *employeeRepoImpl) UpdateSyncResult(ctx context.Context, employee *model.Employee) error {
	return s.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", employee.ID).
		Select("nickname", "avatar_url", "fans_count", "like_count", "comment_count",
			"share_count", "home_pv", "video_count", "last_sync_time").
		Updates(employee).Error
}

// DeleteEmployee 删除员工并级联删除令牌、快照与视频数据
func (s *employeeRepoImpl) DeleteEmployee(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.Employee{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 {
			return nil
		}
		if err := tx.Where("employee_id = ?", id).Delete(&model.AuthToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&model.MetricSnapshot{}).Error; err != nil {
			return err
		}
		return tx.Where("employee_id = ?", id).Delete(&model.VideoRecord{}).Error
	})
	return affected, err
}

func (s *employeeRepoImpl) GetEmployeeTotals(ctx context.Context) (*EmployeeTotals, error) {
	totals := &EmployeeTotals{}
	err := s.db.WithContext(ctx).
		Model(&model.Employee{}).
		Select("COUNT(*) AS total_employees",
			"COALESCE(SUM(CASE WHEN auth_status = 'authorized' THEN 1 ELSE 0 END), 0) AS authorized_employees",
			"COALESCE(SUM(fans_count), 0) AS total_fans",
			"COALESCE(SUM(like_count), 0) AS total_likes",
			"COALESCE(SUM(comment_count), 0) AS total_comments",
			"COALESCE(SUM(share_count), 0) AS total_shares",
			"COALESCE(SUM(home_pv), 0) AS total_home_pv",
			"COALESCE(SUM(video_count), 0) AS total_videos").
		Scan(totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
