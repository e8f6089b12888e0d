package handler

import (
	"strconv"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/response"
	"github.com/Osirs/douyin-data-analysis-tool/internal/service"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncSvc service.SyncService
}

func NewSyncHandler(syncSvc service.SyncService) *SyncHandler {
	return &SyncHandler{
		syncSvc: syncSvc,
	}
}

// ManualSync 手动触发同步。带 employee_id 只同步单人，否则全量
func (s *SyncHandler) ManualSync(c *gin.Context) {
	var req dto.ManualSyncDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	var targets []string
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		targets = []string{*req.EmployeeID}
	}
	outcome, err := s.syncSvc.SyncBatch(c.Request.Context(), targets, model.SyncTypeManual)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, outcome)
}

func (s *SyncHandler) SyncOne(c *gin.Context) {
	outcome, err := s.syncSvc.SyncOne(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, outcome)
}

func (s *SyncHandler) GetSyncHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := s.syncSvc.GetSyncHistory(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}
