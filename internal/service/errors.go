package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrEmployeeNotFound    = errors.New("员工不存在")
	ErrDouyinAccountExist  = errors.New("抖音账号已被其他员工绑定")
	ErrTokenNotFound       = errors.New("未找到有效的授权Token")
	ErrTokenExpired        = errors.New("授权Token已过期，请刷新或重新授权")
	ErrRefreshTokenExpired = errors.New("刷新令牌已过期，请重新授权")
	ErrSyncInProgress      = errors.New("该员工正在同步中，请稍后重试")
	ErrConfigNotFound      = errors.New("配置项不存在")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrEmployeeNotFound:    NotFound,
	ErrDouyinAccountExist:  BadRequest,
	ErrTokenNotFound:       NotFound,
	ErrTokenExpired:        Unauthorized,
	ErrRefreshTokenExpired: Unauthorized,
	ErrSyncInProgress:      BadRequest,
	ErrConfigNotFound:      NotFound,
	UnExpectedError:        InternalServerError,
}
