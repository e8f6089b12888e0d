package dto

import "time"

// UserDataDTO 员工当前指标快照
type UserDataDTO struct {
	EmployeeID   string     `json:"employee_id"`
	Nickname     string     `json:"nickname"`
	AvatarURL    string     `json:"avatar_url"`
	FansCount    int64      `json:"fans_count"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	ShareCount   int64      `json:"share_count"`
	HomePV       int64      `json:"home_pv"`
	VideoCount   int64      `json:"video_count"`
	LastSyncTime *time.Time `json:"last_sync_time"`
}

// HistoryPointDTO 某一天的各项指标值，缺失的指标不出现在 Values 里
type HistoryPointDTO struct {
	Date   string           `json:"date"`
	Values map[string]int64 `json:"values"`
}

type UserHistoryDTO struct {
	EmployeeID string             `json:"employee_id"`
	Days       int                `json:"days"`
	Points     []*HistoryPointDTO `json:"points"`
}
