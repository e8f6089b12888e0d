package job

import (
	"context"
	log "log/slog"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/logger"
	"github.com/Osirs/douyin-data-analysis-tool/internal/service"

	"github.com/google/uuid"
)

// MetricSyncJob 每日定时全量同步授权员工的指标
type MetricSyncJob struct {
	syncSvc service.SyncService
}

func NewMetricSyncJob(syncSvc service.SyncService) *MetricSyncJob {
	return &MetricSyncJob{
		syncSvc: syncSvc,
	}
}

func (s *MetricSyncJob) Run() {
	traceID := "job-metric-sync-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	log.InfoContext(ctx, "MetricSyncJob starting")
	outcome, err := s.syncSvc.SyncBatch(ctx, nil, model.SyncTypeScheduled)
	if err != nil {
		log.ErrorContext(ctx, "定时同步失败", "err", err)
		return
	}
	log.InfoContext(ctx, "MetricSyncJob finished",
		"total", outcome.Total,
		"success", outcome.SuccessCount,
		"failed", outcome.FailedCount)
}
