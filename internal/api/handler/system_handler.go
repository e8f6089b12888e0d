package handler

import (
	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/response"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/util"
	"github.com/Osirs/douyin-data-analysis-tool/internal/service"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	systemSvc service.SystemService
}

func NewSystemHandler(systemSvc service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemSvc: systemSvc,
	}
}

func (s *SystemHandler) GetConfig(c *gin.Context) {
	cfg, err := s.systemSvc.GetConfig(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cfg)
}

func (s *SystemHandler) SetConfig(c *gin.Context) {
	var req dto.ConfigDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.systemSvc.SetConfig(c.Request.Context(), req.Key, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SystemHandler) GetStatistics(c *gin.Context) {
	statistics, err := s.systemSvc.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, statistics)
}

func (s *SystemHandler) ExportData(c *gin.Context) {
	data, err := s.systemSvc.ExportAllData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

func (s *SystemHandler) ImportData(c *gin.Context) {
	var req dto.ExportData
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.systemSvc.ImportAllData(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SystemHandler) ClearData(c *gin.Context) {
	if err := s.systemSvc.ClearAllData(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
