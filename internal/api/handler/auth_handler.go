package handler

import (
	log "log/slog"
	"net/http"
	"net/url"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/response"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/util"
	"github.com/Osirs/douyin-data-analysis-tool/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

func (s *AuthHandler) GetAuthURL(c *gin.Context) {
	authURL, err := s.authSvc.BuildAuthorizationURL(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.AuthURLData{AuthURL: authURL})
}

func (s *AuthHandler) ExchangeAccessToken(c *gin.Context) {
	var req dto.AccessTokenDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.authSvc.HandleAuthorizationCode(c.Request.Context(), req.EmployeeID, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

// Callback 抖音授权回调。state 即发起授权时的员工ID，
// 处理完成后跳回前端页面并带上结果
func (s *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	employeeID := c.Query("state")
	if code == "" || employeeID == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	query := url.Values{}
	query.Set("employee_id", employeeID)
	if _, err := s.authSvc.HandleAuthorizationCode(c.Request.Context(), employeeID, code); err != nil {
		log.ErrorContext(c.Request.Context(), "授权回调处理失败", "employee_id", employeeID, "err", err)
		query.Set("auth_result", "failed")
	} else {
		query.Set("auth_result", "success")
	}
	c.Redirect(http.StatusFound, "/?"+query.Encode())
}

func (s *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := s.authSvc.RefreshEmployeeToken(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *AuthHandler) GetToken(c *gin.Context) {
	token, err := s.authSvc.GetToken(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *AuthHandler) Revoke(c *gin.Context) {
	if err := s.authSvc.Revoke(c.Request.Context(), c.Param("employee_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
