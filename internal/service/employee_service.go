package service

import (
	"context"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/util"
	"github.com/Osirs/douyin-data-analysis-tool/internal/repository"
	"github.com/jinzhu/copier"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
	GetEmployee(ctx context.Context, id string) (*model.Employee, error)
	CreateEmployee(ctx context.Context, req *dto.EmployeeCreateDTO) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req *dto.EmployeeUpdateDTO) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type employeeServiceImpl struct {
	employeeRepo repository.EmployeeRepo
}

func NewEmployeeService(employeeRepo repository.EmployeeRepo) EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	return s.employeeRepo.ListEmployees(ctx)
}

func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

// CreateEmployee 新员工初始为 pending 状态，抖音账号全局唯一，
// 重复账号直接拒绝且不落库
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req *dto.EmployeeCreateDTO) (*model.Employee, error) {
	existing, err := s.employeeRepo.GetEmployeeByAccount(ctx, req.DouyinAccount)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDouyinAccountExist
	}

	employee := &model.Employee{
		ID:            util.GenerateEmployeeID(),
		Name:          req.Name,
		Department:    req.Department,
		Position:      req.Position,
		DouyinAccount: req.DouyinAccount,
		AuthStatus:    model.AuthStatusPending,
	}
	if err = s.employeeRepo.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// UpdateEmployee 部分更新，仅 DTO 枚举的档案字段可变
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req *dto.EmployeeUpdateDTO) (*model.Employee, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DouyinAccount != nil && *req.DouyinAccount != employee.DouyinAccount {
		existing, err := s.employeeRepo.GetEmployeeByAccount(ctx, *req.DouyinAccount)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDouyinAccountExist
		}
	}

	if err = copier.CopyWithOption(employee, req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err = s.employeeRepo.UpdateEmployeeProfile(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee 删除员工并级联清理令牌、快照与视频数据
func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	affected, err := s.employeeRepo.DeleteEmployee(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
