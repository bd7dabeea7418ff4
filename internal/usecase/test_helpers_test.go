package usecase

import (
	"io"
	"strings"
	"testing"
	"time"

	"homecare-scheduler/config"
	"homecare-scheduler/internal/domain/entity"
	"homecare-scheduler/internal/infrastructure/database"
	"homecare-scheduler/internal/repository"
	"homecare-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

type testUsecases struct {
	db       *gorm.DB
	patients PatientUsecase
	doctors  DoctorUsecase
	schedule ScheduleUsecase
	exports  ExportUsecase
	audit    AuditLogUsecase
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupUsecases(t *testing.T) *testUsecases {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewSessionDatabase(config.DBConfig{Name: name, LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := quietLogger()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	visitRepo := repository.NewVisitRepository()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())

	generator, err := service.NewScheduleGenerator("09:00", 7, entity.AssignmentStrategyRoundRobin, 1, log)
	require.NoError(t, err)

	now := func() time.Time { return fixedNow }

	return &testUsecases{
		db:       db,
		patients: NewPatientUsecase(db, log, patientRepo, auditService),
		doctors:  NewDoctorUsecase(db, log, doctorRepo, auditService),
		schedule: NewScheduleUsecase(db, log, patientRepo, doctorRepo, visitRepo, generator, auditService, 60, now),
		exports:  NewExportUsecase(db, log, patientRepo, doctorRepo, visitRepo, auditService, t.TempDir()),
		audit:    NewAuditLogUsecase(db, log, auditService),
	}
}
