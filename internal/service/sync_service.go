package service

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/consts"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/douyin"
	"github.com/Osirs/douyin-data-analysis-tool/internal/repository"
	"github.com/google/uuid"
)

// MetricsFetcher 指标抓取接口，由 douyin.Client 实现
type MetricsFetcher interface {
	FetchAll(ctx context.Context, openID, accessToken string, dateType int) *douyin.FetchResult
	VideoList(ctx context.Context, openID, accessToken string, count int) ([]douyin.VideoItem, error)
}

// SyncOptions 同步节奏参数。分组并发 + 组间固定停顿，
// 是对上游限流的简单保护，不是自适应退避
type SyncOptions struct {
	BatchSize     int
	BatchPause    time.Duration
	DateType      int
	VideoListSize int
}

type SyncService interface {
	SyncOne(ctx context.Context, employeeID string) (*dto.SyncOutcome, error)
	SyncBatch(ctx context.Context, employeeIDs []string, syncType string) (*dto.BatchOutcome, error)
	GetSyncHistory(ctx context.Context, limit int) ([]*model.SyncRecord, error)
}

type syncServiceImpl struct {
	employeeRepo   repository.EmployeeRepo
	tokenRepo      repository.TokenRepo
	snapshotRepo   repository.SnapshotRepo
	videoRepo      repository.VideoRepo
	syncRecordRepo repository.SyncRecordRepo
	configRepo     repository.ConfigRepo
	fetcher        MetricsFetcher
	locker         Locker
	opts           SyncOptions
}

func NewSyncService(
	employeeRepo repository.EmployeeRepo,
	tokenRepo repository.TokenRepo,
	snapshotRepo repository.SnapshotRepo,
	videoRepo repository.VideoRepo,
	syncRecordRepo repository.SyncRecordRepo,
	configRepo repository.ConfigRepo,
	fetcher MetricsFetcher,
	locker Locker,
	opts SyncOptions,
) SyncService {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 3
	}
	if opts.DateType <= 0 {
		opts.DateType = 7
	}
	if opts.VideoListSize <= 0 {
		opts.VideoListSize = 50
	}
	return &syncServiceImpl{
		employeeRepo:   employeeRepo,
		tokenRepo:      tokenRepo,
		snapshotRepo:   snapshotRepo,
		videoRepo:      videoRepo,
		syncRecordRepo: syncRecordRepo,
		configRepo:     configRepo,
		fetcher:        fetcher,
		locker:         locker,
		opts:           opts,
	}
}

// SyncOne 对单个员工做一次完整的指标同步。
// 失败的指标保留员工原有计数器值，绝不回退；部分失败属于正常返回
func (s *syncServiceImpl) SyncOne(ctx context.Context, employeeID string) (*dto.SyncOutcome, error) {
	lockKey := consts.SyncLockKey + employeeID
	lockValue := uuid.NewString()
	locked, err := s.locker.TryLock(ctx, lockKey, lockValue, time.Minute*5, 1)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrSyncInProgress
	}
	defer s.locker.Unlock(ctx, lockKey, lockValue)

	employee, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	token, err := s.tokenRepo.GetToken(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}

	now := time.Now()
	if token.Expired(now) {
		if statusErr := s.employeeRepo.UpdateAuthStatus(ctx, employeeID, model.AuthStatusExpired); statusErr != nil {
			log.ErrorContext(ctx, "更新员工授权状态失败", "employee_id", employeeID, "err", statusErr)
		}
		return nil, ErrTokenExpired
	}

	result := s.fetcher.FetchAll(ctx, token.OpenID, token.AccessToken, s.opts.DateType)

	outcome := &dto.SyncOutcome{
		EmployeeID: employeeID,
		Metrics:    make(map[string]dto.MetricOutcome, len(result.Metrics)),
		SyncTime:   now,
	}

	today := midnight(now)
	snapshots := make([]*model.MetricSnapshot, 0, len(model.MetricTypes))
	for _, metricType := range model.MetricTypes {
		m, ok := result.Metrics[metricType]
		if !ok || !m.Success {
			// 抓取失败的指标保留上一次的值
			outcome.Metrics[metricType] = dto.MetricOutcome{Success: false, Message: m.Message}
			outcome.FailedMetrics++
			continue
		}
		outcome.Metrics[metricType] = dto.MetricOutcome{Success: true, Value: m.Value}
		applyMetric(employee, metricType, m.Value)
		snapshots = append(snapshots, &model.MetricSnapshot{
			EmployeeID: employeeID,
			DataType:   metricType,
			DataValue:  m.Value,
			DataDate:   today,
		})
	}
	outcome.Errors = append(outcome.Errors, result.Errors...)

	employee.LastSyncTime = &now
	if err = s.employeeRepo.UpdateSyncResult(ctx, employee); err != nil {
		return nil, err
	}
	if err = s.snapshotRepo.SaveSnapshots(ctx, snapshots); err != nil {
		return nil, err
	}

	// 视频列表尽力而为，失败只记录不影响本次同步结果
	if videos, videoErr := s.fetcher.VideoList(ctx, token.OpenID, token.AccessToken, s.opts.VideoListSize); videoErr != nil {
		outcome.Errors = append(outcome.Errors, "video_list: "+videoErr.Error())
	} else if err = s.videoRepo.ReplaceVideos(ctx, employeeID, toVideoRecords(employeeID, videos)); err != nil {
		outcome.Errors = append(outcome.Errors, "video_list: "+err.Error())
	}

	log.InfoContext(ctx, "员工数据同步完成",
		"employee_id", employeeID,
		"failed_metrics", outcome.FailedMetrics)
	return outcome, nil
}

// SyncBatch 批量同步。不传ID列表时以全部 authorized 员工为目标；
// 单个员工失败不会中止批次，最终 success + failed 恒等于目标数
func (s *syncServiceImpl) SyncBatch(ctx context.Context, employeeIDs []string, syncType string) (*dto.BatchOutcome, error) {
	targets := employeeIDs
	if len(targets) == 0 {
		employees, err := s.employeeRepo.ListEmployeesByAuthStatus(ctx, model.AuthStatusAuthorized)
		if err != nil {
			return nil, err
		}
		for _, e := range employees {
			targets = append(targets, e.ID)
		}
	}

	record := &model.SyncRecord{
		SyncType:   syncType,
		SyncStatus: model.SyncStatusRunning,
		StartTime:  time.Now(),
	}
	if len(employeeIDs) == 1 {
		record.EmployeeID = &employeeIDs[0]
	}
	if err := s.syncRecordRepo.CreateSyncRecord(ctx, record); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var successCount, failedCount int
	var errorList []string

	for start := 0; start < len(targets); start += s.opts.BatchSize {
		end := start + s.opts.BatchSize
		if end > len(targets) {
			end = len(targets)
		}

		var wg sync.WaitGroup
		for _, employeeID := range targets[start:end] {
			wg.Add(1)
			go func(employeeID string) {
				defer wg.Done()
				err := s.safeSyncOne(ctx, employeeID)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failedCount++
					errorList = append(errorList, fmt.Sprintf("员工%s: %s", employeeID, err.Error()))
					return
				}
				successCount++
			}(employeeID)
		}
		wg.Wait()

		// 组间停顿，避免请求过于频繁
		if end < len(targets) && s.opts.BatchPause > 0 {
			time.Sleep(s.opts.BatchPause)
		}
	}

	status := model.SyncStatusSuccess
	if failedCount > 0 {
		status = model.SyncStatusFailed
	}
	endTime := time.Now()
	record.SyncStatus = status
	record.EndTime = &endTime
	record.SuccessCount = successCount
	record.FailedCount = failedCount
	record.ErrorMessage = strings.Join(errorList, "; ")
	if err := s.syncRecordRepo.FinishSyncRecord(ctx, record); err != nil {
		log.ErrorContext(ctx, "更新同步记录失败", "sync_record_id", record.ID, "err", err)
	}

	if successCount > 0 {
		if err := s.configRepo.SetConfig(ctx, model.ConfigKeyLastSyncTime, endTime.Format(time.RFC3339)); err != nil {
			log.ErrorContext(ctx, "更新最后同步时间失败", "err", err)
		}
	}

	log.InfoContext(ctx, "批量同步完成",
		"sync_record_id", record.ID,
		"total", len(targets),
		"success", successCount,
		"failed", failedCount)

	return &dto.BatchOutcome{
		SyncRecordID: record.ID,
		Total:        len(targets),
		SuccessCount: successCount,
		FailedCount:  failedCount,
		Errors:       errorList,
	}, nil
}

func (s *syncServiceImpl) GetSyncHistory(ctx context.Context, limit int) ([]*model.SyncRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.syncRecordRepo.ListSyncRecords(ctx, limit)
}

// safeSyncOne 兜住单个员工同步中的 panic，保证一个员工崩溃不影响批次
func (s *syncServiceImpl) safeSyncOne(ctx context.Context, employeeID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "员工同步发生panic", "employee_id", employeeID, "panic", r)
			err = UnExpectedError
		}
	}()
	_, err = s.SyncOne(ctx, employeeID)
	return err
}

func applyMetric(employee *model.Employee, metricType string, value int64) {
	switch metricType {
	case model.MetricTypeFans:
		employee.FansCount = value
	case model.MetricTypeLike:
		employee.LikeCount = value
	case model.MetricTypeComment:
		employee.CommentCount = value
	case model.MetricTypeShare:
		employee.ShareCount = value
	case model.MetricTypeHomePV:
		employee.HomePV = value
	case model.MetricTypeVideo:
		employee.VideoCount = value
	}
}

func toVideoRecords(employeeID string, items []douyin.VideoItem) []*model.VideoRecord {
	records := make([]*model.VideoRecord, 0, len(items))
	for _, item := range items {
		record := &model.VideoRecord{
			EmployeeID:   employeeID,
			ItemID:       item.ItemID,
			Title:        item.Title,
			CoverURL:     item.Cover,
			PlayCount:    item.Statistics.PlayCount,
			DiggCount:    item.Statistics.DiggCount,
			CommentCount: item.Statistics.CommentCount,
			ShareCount:   item.Statistics.ShareCount,
		}
		if item.CreateTime > 0 {
			created := time.Unix(item.CreateTime, 0)
			record.VideoCreated = &created
		}
		records = append(records, record)
	}
	return records
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
