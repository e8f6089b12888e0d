package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	"github.com/Osirs/douyin-data-analysis-tool/internal/pkg/douyin"
	"github.com/Osirs/douyin-data-analysis-tool/internal/repository"
)

// AuthProvider 抖音授权接口，由 douyin.Client 实现
type AuthProvider interface {
	BuildAuthURL(state string) string
	ExchangeCodeForToken(ctx context.Context, code string) (*douyin.TokenData, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*douyin.TokenData, error)
	GetUserInfo(ctx context.Context, openID, accessToken string) (*douyin.UserInfo, error)
}

type AuthService interface {
	BuildAuthorizationURL(ctx context.Context, employeeID string) (string, error)
	HandleAuthorizationCode(ctx context.Context, employeeID, code string) (*model.AuthToken, error)
	RefreshEmployeeToken(ctx context.Context, employeeID string) (*model.AuthToken, error)
	GetToken(ctx context.Context, employeeID string) (*model.AuthToken, error)
	Revoke(ctx context.Context, employeeID string) error
}

type authServiceImpl struct {
	employeeRepo repository.EmployeeRepo
	tokenRepo    repository.TokenRepo
	provider     AuthProvider
}

func NewAuthService(employeeRepo repository.EmployeeRepo, tokenRepo repository.TokenRepo, provider AuthProvider) AuthService {
	return &authServiceImpl{
		employeeRepo: employeeRepo,
		tokenRepo:    tokenRepo,
		provider:     provider,
	}
}

// BuildAuthorizationURL 生成授权URL，state 直接携带员工ID用于回调关联。
// state 无签名无 nonce，回调侧不校验其来源（与线上行为一致的已知缺口）
func (s *authServiceImpl) BuildAuthorizationURL(ctx context.Context, employeeID string) (string, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if employee == nil {
		return "", ErrEmployeeNotFound
	}
	return s.provider.BuildAuthURL(employeeID), nil
}

// HandleAuthorizationCode 授权码换令牌并持久化。
// 令牌写入总是同步把员工状态置为 authorized
func (s *authServiceImpl) HandleAuthorizationCode(ctx context.Context, employeeID, code string) (*model.AuthToken, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	data, err := s.provider.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return nil, err
	}

	token, err := s.saveToken(ctx, employeeID, data)
	if err != nil {
		return nil, err
	}

	// 昵称头像尽力而为，拿不到不影响授权结果
	if info, infoErr := s.provider.GetUserInfo(ctx, data.OpenID, data.AccessToken); infoErr == nil {
		employee.Nickname = info.Nickname
		employee.AvatarURL = info.Avatar
		if updateErr := s.employeeRepo.UpdateSyncResult(ctx, employee); updateErr != nil {
			log.WarnContext(ctx, "更新员工昵称头像失败", "employee_id", employeeID, "err", updateErr)
		}
	} else {
		log.WarnContext(ctx, "获取用户信息失败", "employee_id", employeeID, "err", infoErr)
	}

	return token, nil
}

// RefreshEmployeeToken 用刷新令牌换新令牌；刷新失败时员工进入 expired，
// 只能通过重新授权恢复
func (s *authServiceImpl) RefreshEmployeeToken(ctx context.Context, employeeID string) (*model.AuthToken, error) {
	stored, err := s.tokenRepo.GetToken(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrTokenNotFound
	}
	if stored.RefreshExpired(time.Now()) {
		if statusErr := s.employeeRepo.UpdateAuthStatus(ctx, employeeID, model.AuthStatusExpired); statusErr != nil {
			log.ErrorContext(ctx, "更新员工授权状态失败", "employee_id", employeeID, "err", statusErr)
		}
		return nil, ErrRefreshTokenExpired
	}

	data, err := s.provider.RefreshAccessToken(ctx, stored.RefreshToken)
	if err != nil {
		if statusErr := s.employeeRepo.UpdateAuthStatus(ctx, employeeID, model.AuthStatusExpired); statusErr != nil {
			log.ErrorContext(ctx, "更新员工授权状态失败", "employee_id", employeeID, "err", statusErr)
		}
		return nil, err
	}

	return s.saveToken(ctx, employeeID, data)
}

// GetToken 纯读取，不套用过期规则，过期判断由调用方负责
func (s *authServiceImpl) GetToken(ctx context.Context, employeeID string) (*model.AuthToken, error) {
	token, err := s.tokenRepo.GetToken(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}
	return token, nil
}

// Revoke 删除令牌并把员工置为 revoked；令牌不存在时删除幂等
func (s *authServiceImpl) Revoke(ctx context.Context, employeeID string) error {
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return ErrEmployeeNotFound
	}

	if err = s.tokenRepo.DeleteToken(ctx, employeeID); err != nil {
		return err
	}
	return s.employeeRepo.UpdateAuthStatus(ctx, employeeID, model.AuthStatusRevoked)
}

func (s *authServiceImpl) saveToken(ctx context.Context, employeeID string, data *douyin.TokenData) (*model.AuthToken, error) {
	token := &model.AuthToken{
		EmployeeID:       employeeID,
		AccessToken:      data.AccessToken,
		RefreshToken:     data.RefreshToken,
		ExpiresIn:        data.ExpiresIn,
		RefreshExpiresIn: data.RefreshExpiresIn,
		Scope:            data.Scope,
		OpenID:           data.OpenID,
	}
	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.UpdateAuthStatus(ctx, employeeID, model.AuthStatusAuthorized); err != nil {
		return nil, err
	}
	return token, nil
}
