package model

import "time"

// AuthToken 每个员工至多一条，重新授权时整行覆盖
type AuthToken struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	EmployeeID       string    `gorm:"type:varchar(50);not null;uniqueIndex:uk_employee_id" json:"employee_id"`
	AccessToken      string    `gorm:"type:text" json:"access_token"`
	RefreshToken     string    `gorm:"type:text" json:"refresh_token"`
	ExpiresIn        int64     `gorm:"default:0" json:"expires_in"`
	RefreshExpiresIn int64     `gorm:"default:0" json:"refresh_expires_in"`
	Scope            string    `gorm:"type:varchar(500);default:''" json:"scope"`
	OpenID           string    `gorm:"type:varchar(100);default:'';index:idx_open_id" json:"open_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}

// Expired 过期判定只看 CreatedAt + ExpiresIn，不依赖任何存储标记
func (t *AuthToken) Expired(now time.Time) bool {
	return !now.Before(t.CreatedAt.Add(time.Duration(t.ExpiresIn) * time.Second))
}

// RefreshExpired 刷新令牌是否已过期
func (t *AuthToken) RefreshExpired(now time.Time) bool {
	return !now.Before(t.CreatedAt.Add(time.Duration(t.RefreshExpiresIn) * time.Second))
}
