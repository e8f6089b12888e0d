package model

import "time"

const ConfigKeyLastSyncTime = "last_sync_time"

type SystemConfig struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	ConfigKey   string    `gorm:"type:varchar(100);not null;uniqueIndex:uk_config_key" json:"config_key"`
	ConfigValue string    `gorm:"type:text" json:"config_value"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SystemConfig) TableName() string {
	return "system_config"
}
