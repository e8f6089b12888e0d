package model

import "time"

const (
	SyncTypeManual    = "manual"
	SyncTypeScheduled = "scheduled"
)

const (
	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// SyncRecord 每次同步一条，EmployeeID 为空表示批量同步；
// 除 running -> success|failed 的一次状态迁移外只追加不修改
type SyncRecord struct {
	ID           uint64     `gorm:"primaryKey" json:"id"`
	EmployeeID   *string    `gorm:"type:varchar(50)" json:"employee_id"`
	SyncType     string     `gorm:"type:varchar(20);not null" json:"sync_type"`
	SyncStatus   string     `gorm:"type:varchar(20);default:'running'" json:"sync_status"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	SuccessCount int        `gorm:"default:0" json:"success_count"`
	FailedCount  int        `gorm:"default:0" json:"failed_count"`
	ErrorMessage string     `gorm:"type:text" json:"error_message"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (SyncRecord) TableName() string {
	return "sync_records"
}
