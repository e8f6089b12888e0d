package model

import "time"

// VideoRecord 员工视频列表，每次同步整体替换
type VideoRecord struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	EmployeeID   string    `gorm:"type:varchar(50);not null;index:idx_video_employee" json:"employee_id"`
	ItemID       string    `gorm:"type:varchar(100);not null" json:"item_id"`
	Title        string    `gorm:"type:varchar(500);default:''" json:"title"`
	CoverURL     string    `gorm:"type:varchar(500);default:''" json:"cover_url"`
	PlayCount    int64     `gorm:"default:0" json:"play_count"`
	DiggCount    int64     `gorm:"default:0" json:"digg_count"`
	CommentCount int64     `gorm:"default:0" json:"comment_count"`
	ShareCount   int64     `gorm:"default:0" json:"share_count"`
	VideoCreated *time.Time `json:"video_created"`
	CreatedAt    time.Time `json:"created_at"`
}

func (VideoRecord) TableName() string {
	return "video_records"
}
