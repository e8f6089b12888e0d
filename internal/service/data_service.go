package service

import (
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/dto"
	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/consts"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/redis"
	"github.com/Osirs/douyin-data-analysis-tool/internal/repository"
	"github.com/goccy/go-json"
)

type DataService interface {
	GetUserData(ctx context.Context, employeeID string) (*dto.UserDataDTO, error)
	GetUserHistory(ctx context.Context, employeeID string, days int) (*dto.UserHistoryDTO, error)
	GetVideos(ctx context.Context, employeeID string, limit int) ([]*model.VideoRecord, error)
}

type dataServiceImpl struct {
	employeeRepo repository.EmployeeRepo
	snapshotRepo repository.SnapshotRepo
	videoRepo    repository.VideoRepo
}

func NewDataService(
	employeeRepo repository.EmployeeRepo,
	snapshotRepo repository.SnapshotRepo,
	videoRepo repository.VideoRepo,
) DataService {
	return &dataServiceImpl{
		employeeRepo: employeeRepo,
		snapshotRepo: snapshotRepo,
		videoRepo:    videoRepo,
	}
}

func (s *dataServiceImpl) GetUserData(ctx context.Context, employeeID string) (*dto.UserDataDTO, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return &dto.UserDataDTO{
		EmployeeID:   employee.ID,
		Nickname:     employee.Nickname,
		AvatarURL:    employee.AvatarURL,
		FansCount:    employee.FansCount,
		LikeCount:    employee.LikeCount,
		CommentCount: employee.CommentCount,
		ShareCount:   employee.ShareCount,
		HomePV:       employee.HomePV,
		VideoCount:   employee.VideoCount,
		LastSyncTime: employee.LastSyncTime,
	}, nil
}

// GetUserHistory 查询近 N 天的指标历史。结果按天缓存到 redis，
// 当天再次同步会产生新快照，所以缓存只到当天零点失效
func (s *dataServiceImpl) GetUserHistory(ctx context.Context, employeeID string, days int) (*dto.UserHistoryDTO, error) {
	if days <= 0 {
		days = 7
	}

	cacheKey := fmt.Sprintf("%s%s:%d", consts.EmployeeHistoryKey, employeeID, days)
	if cached, err := redis.GetValue(ctx, cacheKey); err != nil {
		log.WarnContext(ctx, "读取历史缓存失败", "key", cacheKey, "err", err)
	} else if cached != "" {
		history := &dto.UserHistoryDTO{}
		if err = json.Unmarshal([]byte(cached), history); err == nil {
			return history, nil
		}
		log.WarnContext(ctx, "历史缓存内容异常，回源查询", "key", cacheKey, "err", err)
	}

	employee, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	snapshots, err := s.snapshotRepo.GetHistory(ctx, employeeID, days)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*dto.HistoryPointDTO)
	for _, snapshot := range snapshots {
		date := snapshot.DataDate.Format(time.DateOnly)
		point, ok := byDate[date]
		if !ok {
			point = &dto.HistoryPointDTO{Date: date, Values: make(map[string]int64)}
			byDate[date] = point
		}
		point.Values[snapshot.DataType] = snapshot.DataValue
	}

	points := make([]*dto.HistoryPointDTO, 0, len(byDate))
	for _, point := range byDate {
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	history := &dto.UserHistoryDTO{
		EmployeeID: employeeID,
		Days:       days,
		Points:     points,
	}

	if payload, marshalErr := json.Marshal(history); marshalErr == nil {
		if err = redis.SetWithExpiration(ctx, cacheKey, string(payload), untilMidnight(time.Now())); err != nil {
			log.WarnContext(ctx, "写入历史缓存失败", "key", cacheKey, "err", err)
		}
	}
	return history, nil
}

func (s *dataServiceImpl) GetVideos(ctx context.Context, employeeID string, limit int) ([]*model.VideoRecord, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return s.videoRepo.ListVideos(ctx, employeeID, limit)
}

func untilMidnight(now time.Time) time.Duration {
	next := midnight(now).Add(time.Hour * 24)
	return next.Sub(now)
}
