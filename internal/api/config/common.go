package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Douyin   DouyinConfig   `mapstructure:"douyin"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Logstash LogstashConfig `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置，MySQL 不可用时可降级为 SQLite 内存库
type DBConfig struct {
	DSN            string `mapstructure:"dsn"`
	MemoryFallback bool   `mapstructure:"memory_fallback"`
	MaxIdle        int    `mapstructure:"max_idle"`
	MaxOpen        int    `mapstructure:"max_open"`
	MaxLifetime    int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// DouyinConfig 抖音开放平台应用配置
type DouyinConfig struct {
	ClientKey    string `mapstructure:"client_key"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
	Scope        string `mapstructure:"scope"`
	BaseURL      string `mapstructure:"base_url"`
	Timeout      int    `mapstructure:"timeout"`
}

// SyncConfig 数据同步配置
type SyncConfig struct {
	BatchSize     int    `mapstructure:"batch_size"`
	BatchPauseMS  int    `mapstructure:"batch_pause_ms"`
	DateType      int    `mapstructure:"date_type"`
	VideoListSize int    `mapstructure:"video_list_size"`
	CronSpec      string `mapstructure:"cron_spec"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
