package handler

import (
	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/response"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/util"
	"github.com/Osirs/douyin-data-analysis-tool/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeSvc: employeeSvc,
	}
}

func (s *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := s.employeeSvc.ListEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employees)
}

func (s *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := s.employeeSvc.GetEmployee(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

func (s *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	employee, err := s.employeeSvc.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

func (s *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req dto.EmployeeUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	employee, err := s.employeeSvc.UpdateEmployee(c.Request.Context(), c.Param("employee_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

func (s *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := s.employeeSvc.DeleteEmployee(c.Request.Context(), c.Param("employee_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
