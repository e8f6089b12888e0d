package api

import (
	"net/http"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/middleware"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	// 员工更新接口只允许白名单字段，未知字段直接拒绝
	gin.EnableJsonDecoderDisallowUnknownFields()
}

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		employeeGroup := apiGroup.Group("/employees")
		{
			employeeGroup.GET("", group.EmployeeHandler.ListEmployees)
			employeeGroup.POST("", group.EmployeeHandler.CreateEmployee)
			employeeGroup.GET("/:employee_id", group.EmployeeHandler.GetEmployee)
			employeeGroup.PUT("/:employee_id", group.EmployeeHandler.UpdateEmployee)
			employeeGroup.DELETE("/:employee_id", group.EmployeeHandler.DeleteEmployee)

			employeeGroup.GET("/:employee_id/data", group.DataHandler.GetUserData)
			employeeGroup.GET("/:employee_id/history", group.DataHandler.GetUserHistory)
			employeeGroup.GET("/:employee_id/videos", group.DataHandler.GetVideos)
		}

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.GET("/url/:employee_id", group.AuthHandler.GetAuthURL)
			authGroup.POST("/access-token", group.AuthHandler.ExchangeAccessToken)
			authGroup.GET("/callback", group.AuthHandler.Callback)
			authGroup.POST("/refresh/:employee_id", group.AuthHandler.RefreshToken)
			authGroup.GET("/token/:employee_id", group.AuthHandler.GetToken)
			authGroup.DELETE("/:employee_id", group.AuthHandler.Revoke)
		}

		syncGroup := apiGroup.Group("/sync")
		{
			syncGroup.POST("", group.SyncHandler.ManualSync)
			syncGroup.POST("/:employee_id", group.SyncHandler.SyncOne)
			syncGroup.GET("/history", group.SyncHandler.GetSyncHistory)
		}

		systemGroup := apiGroup.Group("/system")
		{
			systemGroup.GET("/statistics", group.SystemHandler.GetStatistics)
			systemGroup.GET("/config/:key", group.SystemHandler.GetConfig)
			systemGroup.PUT("/config", group.SystemHandler.SetConfig)
			systemGroup.GET("/export", group.SystemHandler.ExportData)
			systemGroup.POST("/import", group.SystemHandler.ImportData)
			systemGroup.DELETE("/data", group.SystemHandler.ClearData)
		}
	}

	return r
}
