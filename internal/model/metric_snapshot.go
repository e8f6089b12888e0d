package model

import "time"

// 指标类型，对应抖音开放平台的六个数据接口
const (
	MetricTypeFans    = "fans"
	MetricTypeLike    = "like"
	MetricTypeComment = "comment"
	MetricTypeShare   = "share"
	MetricTypeHomePV  = "home_pv"
	MetricTypeVideo   = "video"
)

// MetricTypes 固定顺序的全部指标类型
var MetricTypes = []string{
	MetricTypeFans,
	MetricTypeLike,
	MetricTypeComment,
	MetricTypeShare,
	MetricTypeHomePV,
	MetricTypeVideo,
}

// MetricSnapshot 按日期追加的指标快照，插入后不再修改；
// 同一天重复同步时同 (员工, 类型, 日期) 覆盖当日值
type MetricSnapshot struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"type:varchar(50);not null;uniqueIndex:uk_employee_type_date,priority:1" json:"employee_id"`
	DataType   string    `gorm:"type:varchar(20);not null;uniqueIndex:uk_employee_type_date,priority:2" json:"data_type"`
	DataValue  int64     `gorm:"default:0" json:"data_value"`
	DataDate   time.Time `gorm:"type:date;not null;uniqueIndex:uk_employee_type_date,priority:3;index:idx_data_date" json:"data_date"`
	CreatedAt  time.Time `json:"created_at"`
}

func (MetricSnapshot) TableName() string {
	return "metric_snapshots"
}
