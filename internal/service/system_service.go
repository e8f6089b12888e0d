package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/consts"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/redis"
	"github.com/Osirs/douyin-data-analysis-tool/internal/repository"
	"github.com/goccy/go-json"
)

type SystemService interface {
	GetConfig(ctx context.Context, key string) (*model.SystemConfig, error)
	SetConfig(ctx context.Context, key string, value string) error
	GetStatistics(ctx context.Context) (*dto.StatisticsDTO, error)
	ExportAllData(ctx context.Context) (*dto.ExportData, error)
	ImportAllData(ctx context.Context, data *dto.ExportData) error
	ClearAllData(ctx context.Context) error
}

type systemServiceImpl struct {
	employeeRepo    repository.EmployeeRepo
	tokenRepo       repository.TokenRepo
	snapshotRepo    repository.SnapshotRepo
	videoRepo       repository.VideoRepo
	syncRecordRepo  repository.SyncRecordRepo
	configRepo      repository.ConfigRepo
	maintenanceRepo repository.MaintenanceRepo
}

func NewSystemService(
	employeeRepo repository.EmployeeRepo,
	tokenRepo repository.TokenRepo,
	snapshotRepo repository.SnapshotRepo,
	videoRepo repository.VideoRepo,
	syncRecordRepo repository.SyncRecordRepo,
	configRepo repository.ConfigRepo,
	maintenanceRepo repository.MaintenanceRepo,
) SystemService {
	return &systemServiceImpl{
		employeeRepo:    employeeRepo,
		tokenRepo:       tokenRepo,
		snapshotRepo:    snapshotRepo,
		videoRepo:       videoRepo,
		syncRecordRepo:  syncRecordRepo,
		configRepo:      configRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

func (s *systemServiceImpl) GetConfig(ctx context.Context, key string) (*model.SystemConfig, error) {
	cfg, err := s.configRepo.GetConfig(ctx, key)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrConfigNotFound
	}
	return cfg, nil
}

func (s *systemServiceImpl) SetConfig(ctx context.Context, key string, value string) error {
	return s.configRepo.SetConfig(ctx, key, value)
}

// GetStatistics 概览统计。聚合查询走数据库，结果短暂缓存，
// 同步完成后的下一分钟内可能读到旧值，可接受
func (s *systemServiceImpl) GetStatistics(ctx context.Context) (*dto.StatisticsDTO, error) {
	if cached, err := redis.GetValue(ctx, consts.StatisticsKey); err != nil {
		log.WarnContext(ctx, "读取统计缓存失败", "err", err)
	} else if cached != "" {
		statistics := &dto.StatisticsDTO{}
		if err = json.Unmarshal([]byte(cached), statistics); err == nil {
			return statistics, nil
		}
	}

	totals, err := s.employeeRepo.GetEmployeeTotals(ctx)
	if err != nil {
		return nil, err
	}

	statistics := &dto.StatisticsDTO{
		TotalEmployees:      totals.TotalEmployees,
		AuthorizedEmployees: totals.AuthorizedEmployees,
		TotalFans:           totals.TotalFans,
		TotalLikes:          totals.TotalLikes,
		TotalComments:       totals.TotalComments,
		TotalShares:         totals.TotalShares,
		TotalHomePV:         totals.TotalHomePV,
		TotalVideos:         totals.TotalVideos,
	}
	if cfg, cfgErr := s.configRepo.GetConfig(ctx, model.ConfigKeyLastSyncTime); cfgErr != nil {
		log.WarnContext(ctx, "读取最后同步时间失败", "err", cfgErr)
	} else if cfg != nil {
		statistics.LastSyncTime = cfg.ConfigValue
	}

	if payload, marshalErr := json.Marshal(statistics); marshalErr == nil {
		if err = redis.SetWithExpiration(ctx, consts.StatisticsKey, string(payload), time.Minute); err != nil {
			log.WarnContext(ctx, "写入统计缓存失败", "err", err)
		}
	}
	return statistics, nil
}

func (s *systemServiceImpl) ExportAllData(ctx context.Context) (*dto.ExportData, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	tokens, err := s.tokenRepo.ListTokens(ctx)
	if err != nil {
		return nil, err
	}
	snapshots, err := s.snapshotRepo.ListSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := s.videoRepo.ListAllVideos(ctx)
	if err != nil {
		return nil, err
	}
	syncRecords, err := s.syncRecordRepo.ListSyncRecords(ctx, 0)
	if err != nil {
		return nil, err
	}
	configs, err := s.configRepo.ListConfigs(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ExportData{
		ExportTime:  time.Now().Format(time.RFC3339),
		Employees:   employees,
		AuthTokens:  tokens,
		Snapshots:   snapshots,
		Videos:      videos,
		SyncRecords: syncRecords,
		Configs:     configs,
	}, nil
}

// ImportAllData 全量导入，先清空再恢复；同步历史不回灌
func (s *systemServiceImpl) ImportAllData(ctx context.Context, data *dto.ExportData) error {
	if err := s.maintenanceRepo.ClearAllData(ctx); err != nil {
		return err
	}

	byEmployee := make(map[string][]*model.VideoRecord)
	for _, video := range data.Videos {
		byEmployee[video.EmployeeID] = append(byEmployee[video.EmployeeID], video)
	}

	for _, employee := range data.Employees {
		if err := s.employeeRepo.CreateEmployee(ctx, employee); err != nil {
			return err
		}
	}
	for _, token := range data.AuthTokens {
		if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
			return err
		}
	}
	if err := s.snapshotRepo.SaveSnapshots(ctx, data.Snapshots); err != nil {
		return err
	}
	for employeeID, videos := range byEmployee {
		if err := s.videoRepo.ReplaceVideos(ctx, employeeID, videos); err != nil {
			return err
		}
	}
	for _, cfg := range data.Configs {
		if err := s.configRepo.SetConfig(ctx, cfg.ConfigKey, cfg.ConfigValue); err != nil {
			return err
		}
	}

	if err := redis.DeleteKey(ctx, consts.StatisticsKey); err != nil {
		log.WarnContext(ctx, "删除统计缓存失败", "err", err)
	}
	log.InfoContext(ctx, "数据导入完成",
		"employees", len(data.Employees),
		"snapshots", len(data.Snapshots))
	return nil
}

func (s *systemServiceImpl) ClearAllData(ctx context.Context) error {
	if err := s.maintenanceRepo.ClearAllData(ctx); err != nil {
		return err
	}
	if err := redis.DeleteKey(ctx, consts.StatisticsKey); err != nil {
		log.WarnContext(ctx, "删除统计缓存失败", "err", err)
	}
	log.WarnContext(ctx, "全部业务数据已清空")
	return nil
}
