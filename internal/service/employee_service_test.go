package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
)

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	var created *model.Employee
	mockRepo := &mockEmployeeRepo{
		getByAccountFunc: func(ctx context.Context, douyinAccount string) (*model.Employee, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, employee *model.Employee) error {
			created = employee
			return nil
		},
	}

	svc := NewEmployeeService(mockRepo)
	employee, err := svc.CreateEmployee(context.Background(), &dto.EmployeeCreateDTO{
		Name:          "张三",
		Department:    "市场部",
		DouyinAccount: "zhangsan_dy",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created == nil {
		t.Fatal("expected employee to be persisted")
	}
	if !strings.HasPrefix(employee.ID, "emp_") {
		t.Errorf("expected generated id with emp_ prefix, got %q", employee.ID)
	}
	if employee.AuthStatus != model.AuthStatusPending {
		t.Errorf("expected new employee status pending, got %q", employee.AuthStatus)
	}
}

func TestEmployeeService_CreateEmployee_DuplicateAccount(t *testing.T) {
	mockRepo := &mockEmployeeRepo{
		getByAccountFunc: func(ctx context.Context, douyinAccount string) (*model.Employee, error) {
			return &model.Employee{ID: "emp_1", DouyinAccount: douyinAccount}, nil
		},
		createFunc: func(ctx context.Context, employee *model.Employee) error {
			t.Fatal("create should not be called for duplicate account")
			return nil
		},
	}

	svc := NewEmployeeService(mockRepo)
	_, err := svc.CreateEmployee(context.Background(), &dto.EmployeeCreateDTO{
		Name:          "李四",
		DouyinAccount: "zhangsan_dy",
	})
	if !errors.Is(err, ErrDouyinAccountExist) {
		t.Fatalf("expected ErrDouyinAccountExist, got %v", err)
	}
}

func TestEmployeeService_UpdateEmployee_PartialFields(t *testing.T) {
	stored := &model.Employee{
		ID:            "emp_1",
		Name:          "张三",
		Department:    "市场部",
		Position:      "专员",
		DouyinAccount: "zhangsan_dy",
	}
	var updated *model.Employee
	mockRepo := &mockEmployeeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Employee, error) {
			return stored, nil
		},
		updateProfileFunc: func(ctx context.Context, employee *model.Employee) error {
			updated = employee
			return nil
		},
	}

	department := "品牌部"
	svc := NewEmployeeService(mockRepo)
	employee, err := svc.UpdateEmployee(context.Background(), "emp_1", &dto.EmployeeUpdateDTO{
		Department: &department,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated == nil {
		t.Fatal("expected profile update to be persisted")
	}
	if employee.Department != "品牌部" {
		t.Errorf("expected department updated, got %q", employee.Department)
	}
	// 未提供的字段保持原值
	if employee.Name != "张三" || employee.Position != "专员" {
		t.Errorf("untouched fields changed: name=%q position=%q", employee.Name, employee.Position)
	}
}

func TestEmployeeService_UpdateEmployee_AccountConflict(t *testing.T) {
	mockRepo := &mockEmployeeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Employee, error) {
			return &model.Employee{ID: id, DouyinAccount: "zhangsan_dy"}, nil
		},
		getByAccountFunc: func(ctx context.Context, douyinAccount string) (*model.Employee, error) {
			return &model.Employee{ID: "emp_2", DouyinAccount: douyinAccount}, nil
		},
	}

	account := "lisi_dy"
	svc := NewEmployeeService(mockRepo)
	_, err := svc.UpdateEmployee(context.Background(), "emp_1", &dto.EmployeeUpdateDTO{
		DouyinAccount: &account,
	})
	if !errors.Is(err, ErrDouyinAccountExist) {
		t.Fatalf("expected ErrDouyinAccountExist, got %v", err)
	}
}

func TestEmployeeService_DeleteEmployee_NotFound(t *testing.T) {
	mockRepo := &mockEmployeeRepo{
		deleteFunc: func(ctx context.Context, id string) (int64, error) {
			return 0, nil
		},
	}

	svc := NewEmployeeService(mockRepo)
	err := svc.DeleteEmployee(context.Background(), "emp_missing")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	mockRepo := &mockEmployeeRepo{}

	svc := NewEmployeeService(mockRepo)
	_, err := svc.GetEmployee(context.Background(), "emp_missing")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
