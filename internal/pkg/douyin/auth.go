package douyin

import (
	"context"
	"net/url"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/config"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	authorizePath    = "/platform/oauth/connect/"
	accessTokenPath  = "/oauth/access_token/"
	refreshTokenPath = "/oauth/refresh_token/"
	userInfoPath     = "/oauth/userinfo/"
)

// Client 抖音开放平台客户端，覆盖授权与数据接口
type Client struct {
	clientKey    string
	clientSecret string
	redirectURI  string
	scope        string
	baseURL      string
	http         *resty.Client
}

func NewClient(cfg config.DouyinConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10
	}
	return &Client{
		clientKey:    cfg.ClientKey,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		scope:        cfg.Scope,
		baseURL:      cfg.BaseURL,
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(time.Duration(timeout) * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

// TokenData 令牌接口返回的原始数据
type TokenData struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
	OpenID           string `json:"open_id"`
	Scope            string `json:"scope"`
	ErrorCode        int64  `json:"error_code"`
	Description      string `json:"description"`
}

// UserInfo 用户基本信息
type UserInfo struct {
	OpenID   string `json:"open_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// BuildAuthURL 构建授权URL。state 携带员工ID用于回调关联，
// 无签名与 nonce（与线上行为一致，已知 CSRF 缺口）
func (c *Client) BuildAuthURL(state string) string {
	v := url.Values{}
	v.Set("client_key", c.clientKey)
	v.Set("response_type", "code")
	v.Set("scope", c.scope)
	v.Set("redirect_uri", c.redirectURI)
	v.Set("state", state)
	return c.baseURL + authorizePath + "?" + v.Encode()
}

// ExchangeCodeForToken 使用授权码换取访问令牌。
// 成功与否以响应体内嵌的 error_code 为准，HTTP 200 不代表成功
func (c *Client) ExchangeCodeForToken(ctx context.Context, code string) (*TokenData, error) {
	body := map[string]string{
		"client_key":    c.clientKey,
		"client_secret": c.clientSecret,
		"code":          code,
		"grant_type":    "authorization_code",
	}
	return c.requestToken(ctx, accessTokenPath, body)
}

// RefreshAccessToken 使用刷新令牌换取新的访问令牌，契约同上
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenData, error) {
	body := map[string]string{
		"client_key":    c.clientKey,
		"refresh_token": refreshToken,
		"grant_type":    "refresh_token",
	}
	return c.requestToken(ctx, refreshTokenPath, body)
}

func (c *Client) requestToken(ctx context.Context, path string, body map[string]string) (*TokenData, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, errors.Wrap(err, "request token endpoint")
	}

	var wrapped struct {
		Data    TokenData `json:"data"`
		Message string    `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &wrapped); err != nil {
		return nil, errors.Wrap(err, "decode token response")
	}

	if wrapped.Data.ErrorCode != 0 || wrapped.Data.AccessToken == "" {
		return nil, newAPIError(wrapped.Data.ErrorCode, wrapped.Data.Description)
	}
	return &wrapped.Data, nil
}

// GetUserInfo 获取用户昵称头像，query 编码
func (c *Client) GetUserInfo(ctx context.Context, openID, accessToken string) (*UserInfo, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"open_id":      openID,
			"access_token": accessToken,
		}).
		Get(userInfoPath)
	if err != nil {
		return nil, errors.Wrap(err, "request userinfo endpoint")
	}

	data, apiErr, err := parseEnvelope(resp.Body())
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		return nil, apiErr
	}

	info := &UserInfo{}
	if v, ok := data["open_id"].(string); ok {
		info.OpenID = v
	}
	if v, ok := data["nickname"].(string); ok {
		info.Nickname = v
	}
	if v, ok := data["avatar"].(string); ok {
		info.Avatar = v
	}
	return info, nil
}
