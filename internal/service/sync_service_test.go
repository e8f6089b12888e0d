package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/consts"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/douyin"
)

func allMetricsSuccess(value int64) *douyin.FetchResult {
	metrics := make(map[string]douyin.MetricResult, len(model.MetricTypes))
	for _, metricType := range model.MetricTypes {
		metrics[metricType] = douyin.MetricResult{Type: metricType, Success: true, Value: value}
	}
	return &douyin.FetchResult{Metrics: metrics}
}

func validToken(employeeID string) *model.AuthToken {
	return &model.AuthToken{
		EmployeeID:       employeeID,
		AccessToken:      "act.abc",
		RefreshToken:     "rft.def",
		ExpiresIn:        1296000,
		RefreshExpiresIn: 2592000,
		OpenID:           "open-" + employeeID,
		CreatedAt:        time.Now().Add(-time.Hour),
	}
}

func newSyncOptions() SyncOptions {
	return SyncOptions{BatchSize: 2, BatchPause: 0, DateType: 7, VideoListSize: 10}
}

func TestSyncService_SyncOne_NoToken(t *testing.T) {
	employeeRepo := &mockEmployeeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Employee, error) {
			return &model.Employee{ID: id, AuthStatus: model.AuthStatusAuthorized}, nil
		},
	}

	svc := NewSyncService(employeeRepo, &mockTokenRepo{}, &mockSnapshotRepo{}, &mockVideoRepo{},
		&mockSyncRecordRepo{}, &mockConfigRepo{}, &mockFetcher{}, NewLocalLocker(), newSyncOptions())

	_, err := svc.SyncOne(context.Background(), "emp_1")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestSyncService_SyncOne_ExpiredToken(t *testing.T) {
	var statusSet string
	employeeRepo := &mockEmployeeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Employee, error) {
			return &model.Employee{ID: id, AuthStatus: model.AuthStatusAuthorized}, nil
		},
		updateAuthStatusFunc: func(ctx context.Context, id string, status string) error {
			statusSet = status
			return nil
		},
	}
	tokenRepo := &mockTokenRepo{
		getFunc: func(ctx context.Context, employeeID string) (*model.AuthToken, error) {
			return &model.AuthToken{
				EmployeeID: employeeID,
				ExpiresIn:  60,
				CreatedAt:  time.Now().Add(-time.Hour),
			}, nil
		},
	}
	fetcher := &mockFetcher{
		fetchAllFunc: func(ctx context.Context, openID, accessToken string, dateType int) *douyin.FetchResult {
			t.Fatal("metrics should not be fetched with an expired token")
			return nil
		},
	}

	svc := NewSyncService(employeeRepo, tokenRepo, &mockSnapshotRepo{}, &mockVideoRepo{},
		&mockSyncRecordRepo{}, &mockConfigRepo{}, fetcher, NewLocalLocker(), newSyncOptions())

	_, err := svc.SyncOne(context.Background(), "emp_1")
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if statusSet != model.AuthStatusExpired {
		t.Errorf("expected employee marked expired, got %q", statusSet)
	}
}

func TestSyncService_SyncOne_PartialFailureKeepsCounters(t *testing.T) {
	var savedEmployee *model.Employee
	var savedSnapshots []*model.MetricSnapshot
	employeeRepo := &mockEmployeeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Employee, error) {
			return &model.Employee{
				ID:         id,
				AuthStatus: model.AuthStatusAuthorized,
				FansCount:  100,
				LikeCount:  40,
			}, nil
		},
		updateSyncResultFunc: func(ctx context.Context, employee *model.Employee) error {
			savedEmployee = employee
			return nil
		},
	}
	tokenRepo := &mockTokenRepo{
		getFunc: func(ctx context.Context, employeeID string) (*model.AuthToken, error) {
			return validToken(employeeID), nil
		},
	}
	snapshotRepo := &mockSnapshotRepo{
		saveFunc: func(ctx context.Context, snapshots []*model.MetricSnapshot) error {
			savedSnapshots = snapshots
			return nil
		},
	}
	fetcher := &mockFetcher{
		fetchAllFunc: func(ctx context.Context, openID, accessToken string, dateType int) *douyin.FetchResult {
			return &douyin.FetchResult{
				Metrics: map[string]douyin.MetricResult{
					model.MetricTypeFans: {Type: model.MetricTypeFans, Success: false, Message: "接口调用超过限制"},
					model.MetricTypeLike: {Type: model.MetricTypeLike, Success: true, Value: 55},
				},
				Errors: []string{"fans: 接口调用超过限制"},
			}
		},
	}

	svc := NewSyncService(employeeRepo, tokenRepo, snapshotRepo, &mockVideoRepo{},
		&mockSyncRecordRepo{}, &mockConfigRepo{}, fetcher, NewLocalLocker(), newSyncOptions())

	outcome, err := svc.SyncOne(context.Background(), "emp_1")
	if err != nil {
		t.Fatalf("partial metric failure should not fail the sync, got %v", err)
	}
	if savedEmployee == nil {
		t.Fatal("expected employee counters to be persisted")
	}
	// 失败的 fans 保留旧值，成功的 like 更新
	if savedEmployee.FansCount != 100 {
		t.Errorf("failed metric must keep previous value, got fans=%d", savedEmployee.FansCount)
	}
	if savedEmployee.LikeCount != 55 {
		t.Errorf("expected like count updated to 55, got %d", savedEmployee.LikeCount)
	}
	if savedEmployee.LastSyncTime == nil {
		t.Error("expected last sync time to be set")
	}
	// 快照只记录成功的指标
	if len(savedSnapshots) != 1 || savedSnapshots[0].DataType != model.MetricTypeLike {
		t.Errorf("expected a single like snapshot, got %+v", savedSnapshots)
	}
	if outcome.FailedMetrics != len(model.MetricTypes)-1 {
		t.Errorf("expected %d failed metrics, got %d", len(model.MetricTypes)-1, outcome.FailedMetrics)
	}
}

func TestSyncService_SyncOne_LockContention(t *testing.T) {
	employeeRepo := &mockEmployeeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Employee, error) {
			return &model.Employee{ID: id, AuthStatus: model.AuthStatusAuthorized}, nil
		},
	}
	locker := NewLocalLocker()
	locked, err := locker.TryLock(context.Background(), consts.SyncLockKey+"emp_1", "other-holder", time.Minute, 1)
	if err != nil || !locked {
		t.Fatalf("failed to pre-acquire lock: locked=%v err=%v", locked, err)
	}

	svc := NewSyncService(employeeRepo, &mockTokenRepo{}, &mockSnapshotRepo{}, &mockVideoRepo{},
		&mockSyncRecordRepo{}, &mockConfigRepo{}, &mockFetcher{}, locker, newSyncOptions())

	_, err = svc.SyncOne(context.Background(), "emp_1")
	if !errors.Is(err, ErrSyncInProgress) {
		t.Fatalf("expected ErrSyncInProgress, got %v", err)
	}
}

func TestSyncService_SyncBatch_CountsConsistent(t *testing.T) {
	existing := map[string]bool{"emp_1": true, "emp_2": true, "emp_3": true}
	var mu sync.Mutex
	var finished *model.SyncRecord
	employeeRepo := &mockEmployeeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Employee, error) {
			if !existing[id] {
				return nil, nil
			}
			return &model.Employee{ID: id, AuthStatus: model.AuthStatusAuthorized}, nil
		},
		updateSyncResultFunc: func(ctx context.Context, employee *model.Employee) error {
			return nil
		},
	}
	tokenRepo := &mockTokenRepo{
		getFunc: func(ctx context.Context, employeeID string) (*model.AuthToken, error) {
			return validToken(employeeID), nil
		},
	}
	syncRecordRepo := &mockSyncRecordRepo{
		createFunc: func(ctx context.Context, record *model.SyncRecord) error {
			record.ID = 7
			return nil
		},
		finishFunc: func(ctx context.Context, record *model.SyncRecord) error {
			mu.Lock()
			defer mu.Unlock()
			finished = record
			return nil
		},
	}
	fetcher := &mockFetcher{
		fetchAllFunc: func(ctx context.Context, openID, accessToken string, dateType int) *douyin.FetchResult {
			return allMetricsSuccess(10)
		},
	}

	svc := NewSyncService(employeeRepo, tokenRepo, &mockSnapshotRepo{}, &mockVideoRepo{},
		syncRecordRepo, &mockConfigRepo{}, fetcher, NewLocalLocker(), newSyncOptions())

	targets := []string{"emp_1", "emp_2", "emp_3", "emp_missing_a", "emp_missing_b"}
	outcome, err := svc.SyncBatch(context.Background(), targets, model.SyncTypeManual)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome.Total != 5 {
		t.Errorf("expected 5 targets, got %d", outcome.Total)
	}
	if outcome.SuccessCount+outcome.FailedCount != outcome.Total {
		t.Errorf("success(%d)+failed(%d) must equal total(%d)",
			outcome.SuccessCount, outcome.FailedCount, outcome.Total)
	}
	if outcome.SuccessCount != 3 || outcome.FailedCount != 2 {
		t.Errorf("expected 3 success / 2 failed, got %d/%d", outcome.SuccessCount, outcome.FailedCount)
	}
	if len(outcome.Errors) != 2 {
		t.Errorf("expected an error entry per failed employee, got %d", len(outcome.Errors))
	}
	if finished == nil {
		t.Fatal("expected sync record to be finished")
	}
	if finished.SyncStatus != model.SyncStatusFailed {
		t.Errorf("batch with failures must finish as failed, got %q", finished.SyncStatus)
	}
	if finished.EndTime == nil {
		t.Error("expected end time on finished record")
	}
}

func TestSyncService_SyncBatch_DefaultTargetsAuthorized(t *testing.T) {
	var lastSyncSet string
	employeeRepo := &mockEmployeeRepo{
		listByAuthStatusFunc: func(ctx context.Context, status string) ([]*model.Employee, error) {
			if status != model.AuthStatusAuthorized {
				t.Errorf("expected authorized filter, got %q", status)
			}
			return []*model.Employee{
				{ID: "emp_1", AuthStatus: model.AuthStatusAuthorized},
				{ID: "emp_2", AuthStatus: model.AuthStatusAuthorized},
			}, nil
		},
		getByIDFunc: func(ctx context.Context, id string) (*model.Employee, error) {
			return &model.Employee{ID: id, AuthStatus: model.AuthStatusAuthorized}, nil
		},
	}
	tokenRepo := &mockTokenRepo{
		getFunc: func(ctx context.Context, employeeID string) (*model.AuthToken, error) {
			return validToken(employeeID), nil
		},
	}
	configRepo := &mockConfigRepo{
		setFunc: func(ctx context.Context, key string, value string) error {
			if key == model.ConfigKeyLastSyncTime {
				lastSyncSet = value
			}
			return nil
		},
	}
	fetcher := &mockFetcher{
		fetchAllFunc: func(ctx context.Context, openID, accessToken string, dateType int) *douyin.FetchResult {
			return allMetricsSuccess(10)
		},
	}

	svc := NewSyncService(employeeRepo, tokenRepo, &mockSnapshotRepo{}, &mockVideoRepo{},
		&mockSyncRecordRepo{}, configRepo, fetcher, NewLocalLocker(), newSyncOptions())

	outcome, err := svc.SyncBatch(context.Background(), nil, model.SyncTypeScheduled)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome.Total != 2 || outcome.SuccessCount != 2 {
		t.Errorf("expected all authorized employees synced, got total=%d success=%d",
			outcome.Total, outcome.SuccessCount)
	}
	if lastSyncSet == "" {
		t.Error("expected last sync time config to be updated after a successful batch")
	}
	if _, err = time.Parse(time.RFC3339, lastSyncSet); err != nil {
		t.Errorf("expected RFC3339 last sync time, got %q: %v", lastSyncSet, err)
	}
}
