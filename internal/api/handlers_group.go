package api

import "github.com/Osirs/douyin-data-analysis-tool/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	EmployeeHandler *handler.EmployeeHandler
	AuthHandler     *handler.AuthHandler
	SyncHandler     *handler.SyncHandler
	DataHandler     *handler.DataHandler
	SystemHandler   *handler.SystemHandler
}
