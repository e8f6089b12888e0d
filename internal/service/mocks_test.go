package service

import (
	"context"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/douyin"
	"github.com/Osirs/douyin-data-analysis-tool/internal/repository"
)

type mockEmployeeRepo struct {
	getByIDFunc          func(ctx context.Context, id string) (*model.Employee, error)
	getByAccountFunc     func(ctx context.Context, douyinAccount string) (*model.Employee, error)
	listFunc             func(ctx context.Context) ([]*model.Employee, error)
	listByAuthStatusFunc func(ctx context.Context, status string) ([]*model.Employee, error)
	createFunc           func(ctx context.Context, employee *model.Employee) error
	updateProfileFunc    func(ctx context.Context, employee *model.Employee) error
	updateAuthStatusFunc func(ctx context.Context, id string, status string) error
	updateSyncResultFunc func(ctx context.Context, employee *model.Employee) error
	deleteFunc           func(ctx context.Context, id string) (int64, error)
	totalsFunc           func(ctx context.Context) (*repository.EmployeeTotals, error)
}

func (m *mockEmployeeRepo) GetEmployeeByID(ctx context.Context, id string) (*model.Employee, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEmployeeRepo) GetEmployeeByAccount(ctx context.Context, douyinAccount string) (*model.Employee, error) {
	if m.getByAccountFunc != nil {
		return m.getByAccountFunc(ctx, douyinAccount)
	}
	return nil, nil
}

func (m *mockEmployeeRepo) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockEmployeeRepo) ListEmployeesByAuthStatus(ctx context.Context, status string) ([]*model.Employee, error) {
	if m.listByAuthStatusFunc != nil {
		return m.listByAuthStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockEmployeeRepo) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeRepo) UpdateEmployeeProfile(ctx context.Context, employee *model.Employee) error {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeRepo) UpdateAuthStatus(ctx context.Context, id string, status string) error {
	if m.updateAuthStatusFunc != nil {
		return m.updateAuthStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockEmployeeRepo) UpdateSyncResult(ctx context.Context, employee *model.Employee) error {
	if m.updateSyncResultFunc != nil {
		return m.updateSyncResultFunc(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeRepo) DeleteEmployee(ctx context.Context, id string) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockEmployeeRepo) GetEmployeeTotals(ctx context.Context) (*repository.EmployeeTotals, error) {
	if m.totalsFunc != nil {
		return m.totalsFunc(ctx)
	}
	return &repository.EmployeeTotals{}, nil
}

type mockTokenRepo struct {
	saveFunc   func(ctx context.Context, token *model.AuthToken) error
	getFunc    func(ctx context.Context, employeeID string) (*model.AuthToken, error)
	deleteFunc func(ctx context.Context, employeeID string) error
	listFunc   func(ctx context.Context) ([]*model.AuthToken, error)
}

func (m *mockTokenRepo) SaveToken(ctx context.Context, token *model.AuthToken) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, token)
	}
	return nil
}

func (m *mockTokenRepo) GetToken(ctx context.Context, employeeID string) (*model.AuthToken, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, employeeID)
	}
	return nil, nil
}

func (m *mockTokenRepo) DeleteToken(ctx context.Context, employeeID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, employeeID)
	}
	return nil
}

func (m *mockTokenRepo) ListTokens(ctx context.Context) ([]*model.AuthToken, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockSnapshotRepo struct {
	saveFunc       func(ctx context.Context, snapshots []*model.MetricSnapshot) error
	getHistoryFunc func(ctx context.Context, employeeID string, days int) ([]*model.MetricSnapshot, error)
	listFunc       func(ctx context.Context) ([]*model.MetricSnapshot, error)
}

func (m *mockSnapshotRepo) SaveSnapshots(ctx context.Context, snapshots []*model.MetricSnapshot) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, snapshots)
	}
	return nil
}

func (m *mockSnapshotRepo) GetHistory(ctx context.Context, employeeID string, days int) ([]*model.MetricSnapshot, error) {
	if m.getHistoryFunc != nil {
		return m.getHistoryFunc(ctx, employeeID, days)
	}
	return nil, nil
}

func (m *mockSnapshotRepo) ListSnapshots(ctx context.Context) ([]*model.MetricSnapshot, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockVideoRepo struct {
	replaceFunc func(ctx context.Context, employeeID string, videos []*model.VideoRecord) error
	listFunc    func(ctx context.Context, employeeID string, limit int) ([]*model.VideoRecord, error)
	listAllFunc func(ctx context.Context) ([]*model.VideoRecord, error)
}

func (m *mockVideoRepo) ReplaceVideos(ctx context.Context, employeeID string, videos []*model.VideoRecord) error {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, employeeID, videos)
	}
	return nil
}

func (m *mockVideoRepo) ListVideos(ctx context.Context, employeeID string, limit int) ([]*model.VideoRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, employeeID, limit)
	}
	return nil, nil
}

func (m *mockVideoRepo) ListAllVideos(ctx context.Context) ([]*model.VideoRecord, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

type mockSyncRecordRepo struct {
	createFunc func(ctx context.Context, record *model.SyncRecord) error
	finishFunc func(ctx context.Context, record *model.SyncRecord) error
	listFunc   func(ctx context.Context, limit int) ([]*model.SyncRecord, error)
}

func (m *mockSyncRecordRepo) CreateSyncRecord(ctx context.Context, record *model.SyncRecord) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, record)
	}
	return nil
}

func (m *mockSyncRecordRepo) FinishSyncRecord(ctx context.Context, record *model.SyncRecord) error {
	if m.finishFunc != nil {
		return m.finishFunc(ctx, record)
	}
	return nil
}

func (m *mockSyncRecordRepo) ListSyncRecords(ctx context.Context, limit int) ([]*model.SyncRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

type mockConfigRepo struct {
	getFunc  func(ctx context.Context, key string) (*model.SystemConfig, error)
	setFunc  func(ctx context.Context, key string, value string) error
	listFunc func(ctx context.Context) ([]*model.SystemConfig, error)
}

func (m *mockConfigRepo) GetConfig(ctx context.Context, key string) (*model.SystemConfig, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockConfigRepo) SetConfig(ctx context.Context, key string, value string) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value)
	}
	return nil
}

func (m *mockConfigRepo) ListConfigs(ctx context.Context) ([]*model.SystemConfig, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockFetcher struct {
	fetchAllFunc  func(ctx context.Context, openID, accessToken string, dateType int) *douyin.FetchResult
	videoListFunc func(ctx context.Context, openID, accessToken string, count int) ([]douyin.VideoItem, error)
}

func (m *mockFetcher) FetchAll(ctx context.Context, openID, accessToken string, dateType int) *douyin.FetchResult {
	if m.fetchAllFunc != nil {
		return m.fetchAllFunc(ctx, openID, accessToken, dateType)
	}
	return &douyin.FetchResult{Metrics: map[string]douyin.MetricResult{}}
}

func (m *mockFetcher) VideoList(ctx context.Context, openID, accessToken string, count int) ([]douyin.VideoItem, error) {
	if m.videoListFunc != nil {
		return m.videoListFunc(ctx, openID, accessToken, count)
	}
	return nil, nil
}

type mockAuthProvider struct {
	buildAuthURLFunc func(state string) string
	exchangeFunc     func(ctx context.Context, code string) (*douyin.TokenData, error)
	refreshFunc      func(ctx context.Context, refreshToken string) (*douyin.TokenData, error)
	getUserInfoFunc  func(ctx context.Context, openID, accessToken string) (*douyin.UserInfo, error)
}

func (m *mockAuthProvider) BuildAuthURL(state string) string {
	if m.buildAuthURLFunc != nil {
		return m.buildAuthURLFunc(state)
	}
	return "https://open.douyin.com/platform/oauth/connect/?state=" + state
}

func (m *mockAuthProvider) ExchangeCodeForToken(ctx context.Context, code string) (*douyin.TokenData, error) {
	if m.exchangeFunc != nil {
		return m.exchangeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockAuthProvider) RefreshAccessToken(ctx context.Context, refreshToken string) (*douyin.TokenData, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, refreshToken)
	}
	return nil, nil
}

func (m *mockAuthProvider) GetUserInfo(ctx context.Context, openID, accessToken string) (*douyin.UserInfo, error) {
	if m.getUserInfoFunc != nil {
		return m.getUserInfoFunc(ctx, openID, accessToken)
	}
	return nil, nil
}
