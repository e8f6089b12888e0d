package dto

import "time"

// ManualSyncDTO 手动同步请求，EmployeeID 为空表示全量同步
type ManualSyncDTO struct {
	EmployeeID *string `json:"employee_id,omitempty"`
}

// MetricOutcome 单项指标的同步结果
type MetricOutcome struct {
	Success bool   `json:"success"`
	Value   int64  `json:"value"`
	Message string `json:"message,omitempty"`
}

// SyncOutcome 单个员工一次同步的结构化结果。
// 部分指标失败不算同步失败，调用方须检查 FailedMetrics
type SyncOutcome struct {
	EmployeeID    string                   `json:"employee_id"`
	Metrics       map[string]MetricOutcome `json:"metrics"`
	FailedMetrics int                      `json:"failed_metrics"`
	Errors        []string                 `json:"errors,omitempty"`
	SyncTime      time.Time                `json:"sync_time"`
}

// BatchOutcome 批量同步汇总结果
type BatchOutcome struct {
	SyncRecordID uint64   `json:"sync_record_id"`
	Total        int      `json:"total"`
	SuccessCount int      `json:"success_count"`
	FailedCount  int      `json:"failed_count"`
	Errors       []string `json:"errors,omitempty"`
}
