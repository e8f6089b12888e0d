package database

import (
	"fmt"
	log "log/slog"
	"time"

	"github.com/Osirs/douyin-data-analysis-tool/internal/api/config"
	"github.com/Osirs/douyin-data-analysis-tool/internal/model"
	applog "github.com/Osirs/douyin-data-analysis-tool/internal/pkg/logger"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewGormDB 初始化并返回 *gorm.DB 实例；MySQL 连接失败且允许降级时
// 切换到 SQLite 内存库，数据在进程退出后丢失
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := openMySQL(cfg)
	if err != nil {
		if !cfg.MemoryFallback {
			return nil, err
		}
		log.Warn("MySQL 连接失败，切换到内存存储模式", "err", err)
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: applog.NewGormLogger(),
		})
		if err != nil {
			return nil, errors.Wrap(err, "open in-memory database")
		}
	}

	if err = db.AutoMigrate(
		&model.Employee{},
		&model.AuthToken{},
		&model.MetricSnapshot{},
		&model.VideoRecord{},
		&model.SyncRecord{},
		&model.SystemConfig{},
	); err != nil {
		return nil, errors.Wrap(err, "auto migrate")
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

func openMySQL(cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:      applog.NewGormLogger(),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	return db, nil
}
