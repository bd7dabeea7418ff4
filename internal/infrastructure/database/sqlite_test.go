package database

import (
	"testing"

	"homecare-scheduler/config"
	"homecare-scheduler/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestNewSessionDatabase_MigratesTables(t *testing.T) {
	db, err := NewSessionDatabase(config.DBConfig{Name: "db_" + t.Name(), LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	for _, model := range []interface{}{&entity.Patient{}, &entity.Doctor{}, &entity.Visit{}, &entity.AuditLog{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}

	require.NoError(t, db.Create(&entity.Patient{Name: "Alice"}).Error)

	var total int64
	require.NoError(t, db.Model(&entity.Patient{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestNewSessionDatabase_SessionsAreIsolated(t *testing.T) {
	first, err := NewSessionDatabase(config.DBConfig{Name: "first_" + t.Name(), LogLevel: "silent"})
	require.NoError(t, err)
	second, err := NewSessionDatabase(config.DBConfig{Name: "second_" + t.Name(), LogLevel: "silent"})
	require.NoError(t, err)

	require.NoError(t, first.Create(&entity.Doctor{Name: "Dr. X", Role: "GP"}).Error)

	var total int64
	require.NoError(t, second.Model(&entity.Doctor{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLogLevel("silent"))
	assert.Equal(t, logger.Error, gormLogLevel("ERROR"))
	assert.Equal(t, logger.Info, gormLogLevel("info"))
	assert.Equal(t, logger.Warn, gormLogLevel(""))
}
