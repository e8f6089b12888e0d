package handler

import (
	"strconv"

	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/response"
	"github.com/Osirs/douyin-data-analysis-tool/internal/service"

	"github.com/gin-gonic/gin"
)

type DataHandler struct {
	dataSvc service.DataService
}

func NewDataHandler(dataSvc service.DataService) *DataHandler {
	return &DataHandler{
		dataSvc: dataSvc,
	}
}

func (s *DataHandler) GetUserData(c *gin.Context) {
	data, err := s.dataSvc.GetUserData(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

func (s *DataHandler) GetUserHistory(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	history, err := s.dataSvc.GetUserHistory(c.Request.Context(), c.Param("employee_id"), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

func (s *DataHandler) GetVideos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	videos, err := s.dataSvc.GetVideos(c.Request.Context(), c.Param("employee_id"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}
