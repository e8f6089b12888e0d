package dto

// AccessTokenDTO 授权码换令牌请求
type AccessTokenDTO struct {
	Code       string `json:"code" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

// AuthURLData 授权URL响应
type AuthURLData struct {
	AuthURL string `json:"auth_url"`
}
