package cron

import (
	log "log/slog"

	"github.com/Osirs/douyin-data-analysis-tool/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	cronSpec      string
	metricSyncJob *job.MetricSyncJob
}

func NewCronManager(cronSpec string, metricSyncJob *job.MetricSyncJob) *Manager {
	return &Manager{
		engine:        cron.New(),
		cronSpec:      cronSpec,
		metricSyncJob: metricSyncJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.cronSpec, s.metricSyncJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
