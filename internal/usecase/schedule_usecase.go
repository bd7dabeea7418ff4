package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homecare-scheduler/internal/converter"
	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"
	"homecare-scheduler/internal/domain/repository"
	"homecare-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrInvalidStartDate  = errors.New("invalid start date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidVisitDate  = errors.New("invalid visit date format, use YYYY-MM-DD")
)

type ScheduleUsecase interface {
	GenerateSchedule(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
	GetSchedule(ctx context.Context) (*dto.ScheduleListResponse, error)
	ReplaceSchedule(ctx context.Context, req *dto.ReplaceScheduleRequest) (*dto.ScheduleListResponse, error)
	InsertEmergency(ctx context.Context, req *dto.InsertEmergencyRequest) (*dto.InsertEmergencyResponse, error)
}

type scheduleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	visitRepo       repository.VisitRepository
	generator       *service.ScheduleGenerator
	auditService    service.AuditService
	defaultDuration int
	now             func() time.Time
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	visitRepo repository.VisitRepository,
	generator *service.ScheduleGenerator,
	auditService service.AuditService,
	defaultDuration int,
	now func() time.Time,
) ScheduleUsecase {
	if now == nil {
		now = time.Now
	}
	return &scheduleUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		visitRepo:       visitRepo,
		generator:       generator,
		auditService:    auditService,
		defaultDuration: defaultDuration,
		now:             now,
	}
}

// GenerateSchedule runs one generation pass. In Automatic mode the result
// replaces every stored visit. An empty roster or Manual mode leaves the
// stored schedule as it was and reports why.
func (u *scheduleUsecase) GenerateSchedule(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	startDate := service.CivilDate(u.now())
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, ErrInvalidStartDate
		}
		startDate = parsed
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = u.defaultDuration
	}

	mode := entity.GenerationMode(req.Mode)
	if mode == "" {
		mode = entity.GenerationModeAutomatic
	}

	opts := service.GenerateOptions{
		Mode:      mode,
		Strategy:  entity.AssignmentStrategy(req.Strategy),
		StartDate: startDate,
		Duration:  duration,
	}

	db := u.db.WithContext(ctx)
	patients, err := u.patientRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	doctors, err := u.doctorRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	plan, err := u.generator.Generate(patients, doctors, opts)
	if err != nil {
		if errors.Is(err, service.ErrEmptyRoster) {
			u.log.Warnf("Schedule not generated: %d patients, %d doctors", len(patients), len(doctors))
			return &dto.GenerateScheduleResponse{
				Generated: false,
				Warning:   service.EmptyRosterWarning,
				Visits:    []dto.VisitResponse{},
			}, nil
		}
		u.log.Warnf("Failed to generate schedule: %+v", err)
		return nil, err
	}

	response := &dto.GenerateScheduleResponse{
		Notices:            plan.Notices,
		RolledPastMidnight: plan.RolledPastMidnight,
		Visits:             converter.VisitsToResponses(plan.Visits),
		Total:              len(plan.Visits),
	}
	if len(plan.Visits) == 0 {
		return response, nil
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.visitRepo.ReplaceAll(tx, plan.Visits); err != nil {
		u.log.Warnf("Failed to store schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, tx, entity.AuditActionScheduleGenerate, entity.JSON{
		"mode":             string(opts.Mode),
		"strategy":         string(opts.Strategy),
		"start_date":       startDate.Format("2006-01-02"),
		"duration_minutes": duration,
		"visits":           len(plan.Visits),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit schedule: %+v", err)
		return nil, err
	}

	u.log.Infof("Schedule generated: %d visits from %s", len(plan.Visits), startDate.Format("2006-01-02"))

	response.Generated = true
	return response, nil
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context) (*dto.ScheduleListResponse, error) {
	visits, err := u.visitRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Visits: converter.VisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

// ReplaceSchedule stores an edited schedule table as is. Ids are not
// renumbered and may repeat.
func (u *scheduleUsecase) ReplaceSchedule(ctx context.Context, req *dto.ReplaceScheduleRequest) (*dto.ScheduleListResponse, error) {
	visits := make([]entity.Visit, 0, len(req.Visits))
	for i := range req.Visits {
		visit, err := converter.VisitRequestToEntity(&req.Visits[i])
		if err != nil {
			return nil, ErrInvalidVisitDate
		}
		visits = append(visits, visit)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldCount, err := u.visitRepo.Count(tx)
	if err != nil {
		u.log.Warnf("Failed to count visits: %+v", err)
		return nil, err
	}

	if err := u.visitRepo.ReplaceAll(tx, visits); err != nil {
		u.log.Warnf("Failed to replace visits: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogReplace(ctx, tx, entity.AuditActionScheduleReplace, "visit", int(oldCount), len(visits)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit visits: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Visits: converter.VisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

// InsertEmergency appends one visit dated today. Its id is derived from the
// current visit count, so it can repeat an id left behind by table edits.
func (u *scheduleUsecase) InsertEmergency(ctx context.Context, req *dto.InsertEmergencyRequest) (*dto.InsertEmergencyResponse, error) {
	if strings.TrimSpace(req.PatientName) == "" {
		u.log.Debug("Ignoring emergency submission with blank patient name")
		return &dto.InsertEmergencyResponse{Added: false}, nil
	}

	now := u.now()

	startTime := req.StartTime
	if startTime == "" {
		startTime = now.Format("15:04")
	}
	startMinute, err := service.ParseClock(startTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = u.defaultDuration
	}
	if err := service.ValidateDuration(duration); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctorName := strings.TrimSpace(req.DoctorName)
	role := ""
	if doctorName == "" || doctorName == entity.NoDoctor {
		doctorName = entity.NoDoctor
	} else {
		doctor, err := u.doctorRepo.FindByName(tx, doctorName)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		role = doctor.Role
	}

	count, err := u.visitRepo.Count(tx)
	if err != nil {
		u.log.Warnf("Failed to count visits: %+v", err)
		return nil, err
	}
	visitID := entity.FormatVisitID(int(count) + 1)

	response := &dto.InsertEmergencyResponse{}
	taken, err := u.visitRepo.ExistsVisitID(tx, visitID)
	if err != nil {
		u.log.Warnf("Failed to check visit id: %+v", err)
		return nil, err
	}
	if taken {
		u.log.Warnf("Emergency visit reuses existing visit id %s", visitID)
		response.Warning = fmt.Sprintf("Visit ID %s is already used by another visit.", visitID)
	}

	visit := entity.Visit{
		VisitID:     visitID,
		Date:        service.CivilDate(now),
		PatientName: req.PatientName,
		Diagnosis:   req.Diagnosis,
		DoctorName:  doctorName,
		Role:        role,
		StartTime:   service.FormatClock(startMinute),
		EndTime:     service.FormatClock(startMinute + duration),
		Emergency:   true,
	}

	if err := u.visitRepo.Append(tx, &visit); err != nil {
		u.log.Warnf("Failed to append emergency visit: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionVisitEmergency, "visit", converter.VisitToResponse(&visit)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit emergency visit: %+v", err)
		return nil, err
	}

	u.log.Infof("Emergency '%s' added as %s", visit.PatientName, visit.VisitID)

	response.Added = true
	response.Visit = converter.VisitToResponse(&visit)
	return response, nil
}
