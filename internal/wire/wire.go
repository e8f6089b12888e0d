package wire

import (
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api"
	"github.com/Osirs/douyin-data-analysis-tool/internal/api/config"
	"github.com/Osirs/douyin-data-analysis-tool/internal/api/handler"
	"github.com/Osirs/douyin-data-analysis-tool/internal/job"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/cron"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/douyin"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/redis"
	"github.com/Osirs/douyin-data-analysis-tool/internal/repository"
	"github.com/Osirs/douyin-data-analysis-tool/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	employeeRepo := repository.NewEmployeeRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	snapshotRepo := repository.NewSnapshotRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	syncRecordRepo := repository.NewSyncRecordRepo(db)
	configRepo := repository.NewConfigRepo(db)
	maintenanceRepo := repository.NewMaintenanceRepo(db)

	douyinClient := douyin.NewClient(cfg.Douyin)

	// redis 可用时用分布式锁，否则退化为进程内锁
	var locker service.Locker
	if redis.Enabled() {
		locker = redis.NewSyncLocker()
	} else {
		locker = service.NewLocalLocker()
	}

	employeeService := service.NewEmployeeService(employeeRepo)
	authService := service.NewAuthService(employeeRepo, tokenRepo, douyinClient)
	syncService := service.NewSyncService(
		employeeRepo, tokenRepo, snapshotRepo, videoRepo, syncRecordRepo, configRepo,
		douyinClient, locker,
		service.SyncOptions{
			BatchSize:     cfg.Sync.BatchSize,
			BatchPause:    time.Duration(cfg.Sync.BatchPauseMS) * time.Millisecond,
			DateType:      cfg.Sync.DateType,
			VideoListSize: cfg.Sync.VideoListSize,
		},
	)
	dataService := service.NewDataService(employeeRepo, snapshotRepo, videoRepo)
	systemService := service.NewSystemService(
		employeeRepo, tokenRepo, snapshotRepo, videoRepo, syncRecordRepo, configRepo, maintenanceRepo,
	)

	handlersGroup := &api.HandlersGroup{
		EmployeeHandler: handler.NewEmployeeHandler(employeeService),
		AuthHandler:     handler.NewAuthHandler(authService),
		SyncHandler:     handler.NewSyncHandler(syncService),
		DataHandler:     handler.NewDataHandler(dataService),
		SystemHandler:   handler.NewSystemHandler(systemService),
	}

	metricSyncJob := job.NewMetricSyncJob(syncService)
	cronMgr := cron.NewCronManager(cfg.Sync.CronSpec, metricSyncJob)

	router := api.SetupRouter(handlersGroup)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
