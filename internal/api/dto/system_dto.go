package dto

import "github.com/Osirs/douyin-data-analysis-tool/internal/model"

// ConfigDTO 配置项读写
type ConfigDTO struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value"`
}

// StatisticsDTO 概览统计
type StatisticsDTO struct {
	TotalEmployees      int64  `json:"total_employees"`
	AuthorizedEmployees int64  `json:"authorized_employees"`
	TotalFans           int64  `json:"total_fans"`
	TotalLikes          int64  `json:"total_likes"`
	TotalComments       int64  `json:"total_comments"`
	TotalShares         int64  `json:"total_shares"`
	TotalHomePV         int64  `json:"total_home_pv"`
	TotalVideos         int64  `json:"total_videos"`
	LastSyncTime        string `json:"last_sync_time,omitempty"`
}

// ExportData 全量导出
type ExportData struct {
	ExportTime  string                  `json:"export_time"`
	Employees   []*model.Employee       `json:"employees"`
	AuthTokens  []*model.AuthToken      `json:"auth_tokens"`
	Snapshots   []*model.MetricSnapshot `json:"metric_snapshots"`
	Videos      []*model.VideoRecord    `json:"video_records"`
	SyncRecords []*model.SyncRecord     `json:"sync_records"`
	Configs     []*model.SystemConfig   `json:"system_config"`
}
