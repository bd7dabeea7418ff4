package service

import (
	"errors"
	"fmt"
	"time"

	"homecare-scheduler/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	// ErrEmptyRoster means there is nobody to schedule. Callers report it
	// as a warning and keep the current schedule.
	ErrEmptyRoster     = errors.New("add at least one doctor and one patient first")
	ErrUnknownStrategy = errors.New("unknown assignment strategy")
	ErrUnknownMode     = errors.New("unknown generation mode")
	ErrInvalidDuration = errors.New("visit duration must be 15 to 240 minutes in steps of 15")
)

// Visit length bounds, in minutes.
const (
	MinVisitDuration  = 15
	MaxVisitDuration  = 240
	VisitDurationStep = 15
)

// ValidateDuration checks a visit length against the slot bounds.
func ValidateDuration(minutes int) error {
	if minutes < MinVisitDuration || minutes > MaxVisitDuration || minutes%VisitDurationStep != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, minutes)
	}
	return nil
}

// EmptyRosterWarning is the user-facing text for ErrEmptyRoster.
const EmptyRosterWarning = "Add at least one doctor and one patient first!"

type GenerateOptions struct {
	Mode      entity.GenerationMode
	Strategy  entity.AssignmentStrategy // empty means the generator default
	StartDate time.Time
	Duration  int // minutes
}

// GenerationPlan is the outcome of one pass. Visits is empty in Manual mode.
type GenerationPlan struct {
	Visits             []entity.Visit
	Notices            []string
	RolledPastMidnight bool
}

// ScheduleGenerator places patients into sequential fixed-length slots
// and pairs each with a doctor. It does not look at availability or
// overlaps.
type ScheduleGenerator struct {
	dayStart        int
	windowDays      int
	defaultStrategy entity.AssignmentStrategy
	pickers         map[entity.AssignmentStrategy]DoctorPicker
	log             *logrus.Logger
}

func NewScheduleGenerator(
	dayStart string,
	windowDays int,
	defaultStrategy entity.AssignmentStrategy,
	randomSeed int64,
	log *logrus.Logger,
) (*ScheduleGenerator, error) {
	start, err := ParseClock(dayStart)
	if err != nil {
		return nil, err
	}
	if windowDays < 1 {
		return nil, fmt.Errorf("window must span at least one day, got %d", windowDays)
	}
	if defaultStrategy == "" {
		defaultStrategy = entity.AssignmentStrategyRandom
	}

	g := &ScheduleGenerator{
		dayStart:        start,
		windowDays:      windowDays,
		defaultStrategy: defaultStrategy,
		pickers:         make(map[entity.AssignmentStrategy]DoctorPicker),
		log:             log,
	}
	for _, strategy := range []entity.AssignmentStrategy{entity.AssignmentStrategyRandom, entity.AssignmentStrategyRoundRobin} {
		picker, err := NewDoctorPicker(strategy, randomSeed)
		if err != nil {
			return nil, err
		}
		g.pickers[strategy] = picker
	}
	if _, ok := g.pickers[defaultStrategy]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, defaultStrategy)
	}

	return g, nil
}

// WithPicker replaces the picker used for a strategy.
func (g *ScheduleGenerator) WithPicker(strategy entity.AssignmentStrategy, picker DoctorPicker) *ScheduleGenerator {
	g.pickers[strategy] = picker
	return g
}

// Generate builds one visit per patient in patient order. The visit date
// cycles through the window, while the time of day keeps advancing by one
// duration per patient and never resets per day.
func (g *ScheduleGenerator) Generate(patients []entity.Patient, doctors []entity.Doctor, opts GenerateOptions) (*GenerationPlan, error) {
	if len(patients) == 0 || len(doctors) == 0 {
		return nil, ErrEmptyRoster
	}
	if err := ValidateDuration(opts.Duration); err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == "" {
		mode = entity.GenerationModeAutomatic
	}
	if mode != entity.GenerationModeAutomatic && mode != entity.GenerationModeManual {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = g.defaultStrategy
	}
	picker, ok := g.pickers[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	startDate := CivilDate(opts.StartDate)
	plan := &GenerationPlan{}
	counter := 1

	for i, patient := range patients {
		if mode == entity.GenerationModeManual {
			plan.Notices = append(plan.Notices, fmt.Sprintf("Manual mode: assign patient %s later.", patient.Name))
			continue
		}

		startMinute := g.dayStart + i*opts.Duration
		endMinute := startMinute + opts.Duration
		if endMinute >= minutesPerDay {
			plan.RolledPastMidnight = true
			g.log.Warnf("Visit slot for patient %q runs past midnight (%d minutes after 00:00), clock wraps", patient.Name, endMinute)
		}

		doctor := picker.Pick(i, doctors)
		plan.Visits = append(plan.Visits, entity.Visit{
			VisitID:     entity.FormatVisitID(counter),
			Date:        startDate.AddDate(0, 0, i%g.windowDays),
			PatientName: patient.Name,
			Diagnosis:   patient.Diagnosis,
			DoctorName:  doctor.Name,
			Role:        doctor.Role,
			StartTime:   FormatClock(startMinute),
			EndTime:     FormatClock(endMinute),
		})
		counter++
	}

	return plan, nil
}
