package database

import (
	"fmt"
	"strings"

	"homecare-scheduler/config"
	"homecare-scheduler/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSessionDatabase opens the in-memory record store for one session. The
// data lives only as long as the returned handle stays open.
func NewSessionDatabase(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", cfg.Name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// A shared in-memory database is dropped once its last connection
	// closes, so keep exactly one connection open for the whole session.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := db.AutoMigrate(
		&entity.Patient{},
		&entity.Doctor{},
		&entity.Visit{},
		&entity.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate session database: %w", err)
	}

	logrus.Infof("Session database %q ready", cfg.Name)

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
