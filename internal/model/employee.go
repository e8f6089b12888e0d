package model

import "time"

// 员工授权状态
const (
	AuthStatusPending    = "pending"
	AuthStatusAuthorized = "authorized"
	AuthStatusExpired    = "expired"
	AuthStatusRevoked    = "revoked"
)

type Employee struct {
	ID            string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	Department    string     `gorm:"type:varchar(100);default:''" json:"department"`
	Position      string     `gorm:"type:varchar(100);default:''" json:"position"`
	DouyinAccount string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_douyin_account" json:"douyin_account"`
	AuthStatus    string     `gorm:"type:varchar(20);default:'pending';index:idx_auth_status" json:"auth_status"`
	Nickname      string     `gorm:"type:varchar(100);default:''" json:"nickname"`
	AvatarURL     string     `gorm:"type:varchar(500);default:''" json:"avatar_url"`
	FansCount     int64      `gorm:"default:0" json:"fans_count"`
	LikeCount     int64      `gorm:"default:0" json:"like_count"`
	CommentCount  int64      `gorm:"default:0" json:"comment_count"`
	ShareCount    int64      `gorm:"default:0" json:"share_count"`
	HomePV        int64      `gorm:"column:home_pv;default:0" json:"home_pv"`
	VideoCount    int64      `gorm:"default:0" json:"video_count"`
	LastSyncTime  *time.Time `json:"last_sync_time"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
