package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.memory_fallback", true)
	viper.SetDefault("douyin.base_url", "https://open.douyin.com")
	viper.SetDefault("douyin.scope", "user_info,video.list,video.data")
	viper.SetDefault("douyin.timeout", 10)
	viper.SetDefault("sync.batch_size", 3)
	viper.SetDefault("sync.batch_pause_ms", 1000)
	viper.SetDefault("sync.date_type", 7)
	viper.SetDefault("sync.video_list_size", 50)
	viper.SetDefault("sync.cron_spec", "@daily")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
