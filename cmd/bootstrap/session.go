package bootstrap

import (
	"context"
	"fmt"
	"time"

	"homecare-scheduler/config"
	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"
	"homecare-scheduler/internal/infrastructure/database"
	"homecare-scheduler/internal/repository"
	"homecare-scheduler/internal/service"
	"homecare-scheduler/internal/usecase"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Session is one in-memory working set with every usecase bound to it.
// It lives until Close and is never persisted.
type Session struct {
	DB        *gorm.DB
	Patients  usecase.PatientUsecase
	Doctors   usecase.DoctorUsecase
	Schedule  usecase.ScheduleUsecase
	Exports   usecase.ExportUsecase
	AuditLogs usecase.AuditLogUsecase
}

func NewSession(cfg *config.Config, log *logrus.Logger) (*Session, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewSessionDatabase(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	visitRepo := repository.NewVisitRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	generator, err := service.NewScheduleGenerator(
		cfg.Schedule.DayStart,
		cfg.Schedule.WindowDays,
		entity.AssignmentStrategy(cfg.Schedule.Strategy),
		cfg.Schedule.RandomSeed,
		log,
	)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to build schedule generator: %w", err)
	}

	now := func() time.Time { return time.Now().In(loc) }

	// Initialize usecases
	return &Session{
		DB:        db,
		Patients:  usecase.NewPatientUsecase(db, log, patientRepo, auditService),
		Doctors:   usecase.NewDoctorUsecase(db, log, doctorRepo, auditService),
		Schedule:  usecase.NewScheduleUsecase(db, log, patientRepo, doctorRepo, visitRepo, generator, auditService, cfg.Schedule.DefaultDuration, now),
		Exports:   usecase.NewExportUsecase(db, log, patientRepo, doctorRepo, visitRepo, auditService, cfg.Export.Dir),
		AuditLogs: usecase.NewAuditLogUsecase(db, log, auditService),
	}, nil
}

// Seed adds fake patients and doctors through the regular add path.
func (s *Session) Seed(ctx context.Context, opts SeedOptions) error {
	roster := service.FakeRoster(opts.Seed, opts.Patients, opts.Doctors)

	for _, p := range roster.Patients {
		if _, err := s.Patients.AddPatient(ctx, &dto.CreatePatientRequest{ID: p.ExternalID, Name: p.Name, Diagnosis: p.Diagnosis}); err != nil {
			return err
		}
	}
	for _, d := range roster.Doctors {
		if _, err := s.Doctors.AddDoctor(ctx, &dto.CreateDoctorRequest{ID: d.ExternalID, Name: d.Name, Role: d.Role}); err != nil {
			return err
		}
	}

	logrus.Infof("Seeded %d patients and %d doctors", len(roster.Patients), len(roster.Doctors))
	return nil
}

func (s *Session) Close() {
	closeDB(s.DB)
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
