package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"
	"homecare-scheduler/internal/domain/repository"
	"homecare-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ExportUsecase interface {
	// WriteCSV streams a collection as CSV and returns the number of data rows.
	WriteCSV(ctx context.Context, collection entity.Collection, w io.Writer) (int, error)
	// ExportToFile writes a collection to its fixed file name in the export directory.
	ExportToFile(ctx context.Context, collection entity.Collection) (*dto.ExportFileResponse, error)
}

type exportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	visitRepo    repository.VisitRepository
	auditService service.AuditService
	exportDir    string
}

func NewExportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	visitRepo repository.VisitRepository,
	auditService service.AuditService,
	exportDir string,
) ExportUsecase {
	return &exportUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		visitRepo:    visitRepo,
		auditService: auditService,
		exportDir:    exportDir,
	}
}

func (u *exportUsecase) WriteCSV(ctx context.Context, collection entity.Collection, w io.Writer) (int, error) {
	db := u.db.WithContext(ctx)

	switch collection {
	case entity.CollectionPatients:
		patients, err := u.patientRepo.FindAll(db)
		if err != nil {
			return 0, err
		}
		return len(patients), service.WritePatientsCSV(w, patients)
	case entity.CollectionDoctors:
		doctors, err := u.doctorRepo.FindAll(db)
		if err != nil {
			return 0, err
		}
		return len(doctors), service.WriteDoctorsCSV(w, doctors)
	case entity.CollectionSchedule:
		visits, err := u.visitRepo.FindAll(db)
		if err != nil {
			return 0, err
		}
		return len(visits), service.WriteScheduleCSV(w, visits)
	default:
		return 0, fmt.Errorf("%w: %q", service.ErrUnknownCollection, collection)
	}
}

func (u *exportUsecase) ExportToFile(ctx context.Context, collection entity.Collection) (*dto.ExportFileResponse, error) {
	fileName, err := service.ExportFileName(collection)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(u.exportDir, 0o755); err != nil {
		u.log.Warnf("Failed to create export directory: %+v", err)
		return nil, err
	}

	path := filepath.Join(u.exportDir, fileName)
	file, err := os.Create(path)
	if err != nil {
		u.log.Warnf("Failed to create export file: %+v", err)
		return nil, err
	}
	defer file.Close()

	rows, err := u.WriteCSV(ctx, collection, file)
	if err != nil {
		u.log.Warnf("Failed to export %s: %+v", collection, err)
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, u.db, entity.AuditActionExportWrite, entity.JSON{
		"collection": string(collection),
		"path":       path,
		"rows":       rows,
	}); err != nil {
		return nil, err
	}

	u.log.Infof("Exported %d %s rows to %s", rows, collection, path)

	return &dto.ExportFileResponse{
		Collection: string(collection),
		Path:       path,
		Rows:       rows,
	}, nil
}
