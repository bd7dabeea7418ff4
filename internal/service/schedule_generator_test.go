package service

import (
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"homecare-scheduler/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestGenerator(t *testing.T) *ScheduleGenerator {
	t.Helper()
	g, err := NewScheduleGenerator("09:00", 7, entity.AssignmentStrategyRandom, 42, quietLogger())
	require.NoError(t, err)
	return g
}

func patientsNamed(names ...string) []entity.Patient {
	patients := make([]entity.Patient, len(names))
	for i, n := range names {
		patients[i] = entity.Patient{Name: n, Diagnosis: "dx-" + n}
	}
	return patients
}

func TestGenerate_SingleDoctorExample(t *testing.T) {
	g := newTestGenerator(t)
	doctors := []entity.Doctor{{Name: "Dr.X", Role: "GP"}}

	plan, err := g.Generate(patientsNamed("A", "B", "C"), doctors, GenerateOptions{
		Mode:      entity.GenerationModeAutomatic,
		StartDate: time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC),
		Duration:  60,
	})
	require.NoError(t, err)
	require.Len(t, plan.Visits, 3)
	assert.Empty(t, plan.Notices)
	assert.False(t, plan.RolledPastMidnight)

	expected := []struct {
		id, date, start, end, patient string
	}{
		{"V0001", "2024-01-01", "09:00", "10:00", "A"},
		{"V0002", "2024-01-02", "10:00", "11:00", "B"},
		{"V0003", "2024-01-03", "11:00", "12:00", "C"},
	}
	for i, want := range expected {
		got := plan.Visits[i]
		assert.Equal(t, want.id, got.VisitID)
		assert.Equal(t, want.date, got.Date.Format("2006-01-02"))
		assert.Equal(t, want.start, got.StartTime)
		assert.Equal(t, want.end, got.EndTime)
		assert.Equal(t, want.patient, got.PatientName)
		assert.Equal(t, "dx-"+want.patient, got.Diagnosis)
		assert.Equal(t, "Dr.X", got.DoctorName)
		assert.Equal(t, "GP", got.Role)
		assert.False(t, got.Emergency)
	}
}

func TestGenerate_DatesCycleThroughWeekAndClockNeverResets(t *testing.T) {
	g := newTestGenerator(t)
	doctors := []entity.Doctor{{Name: "Dr.X", Role: "GP"}, {Name: "Dr.Y", Role: "Nurse"}}

	names := make([]string, 9)
	for i := range names {
		names[i] = fmt.Sprintf("P%d", i)
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	plan, err := g.Generate(patientsNamed(names...), doctors, GenerateOptions{StartDate: start, Duration: 30})
	require.NoError(t, err)
	require.Len(t, plan.Visits, 9)

	for i, v := range plan.Visits {
		assert.Equal(t, entity.FormatVisitID(i+1), v.VisitID)
		assert.Equal(t, start.AddDate(0, 0, i%7), v.Date)
		assert.Equal(t, FormatClock(9*60+i*30), v.StartTime)
		assert.Equal(t, FormatClock(9*60+(i+1)*30), v.EndTime)
		assert.Contains(t, []string{"Dr.X", "Dr.Y"}, v.DoctorName)
	}
	// The eighth patient is back on the start date but keeps the later clock.
	assert.Equal(t, "2024-01-01", plan.Visits[7].Date.Format("2006-01-02"))
	assert.Equal(t, "12:30", plan.Visits[7].StartTime)
}

func TestGenerate_RoleTravelsWithPickedDoctor(t *testing.T) {
	g := newTestGenerator(t)
	doctors := []entity.Doctor{{Name: "Dr.X", Role: "GP"}, {Name: "Dr.Y", Role: "Nurse"}, {Name: "Dr.Z", Role: "Physio"}}
	roles := map[string]string{"Dr.X": "GP", "Dr.Y": "Nurse", "Dr.Z": "Physio"}

	plan, err := g.Generate(patientsNamed("A", "B", "C", "D", "E", "F"), doctors, GenerateOptions{StartDate: time.Now(), Duration: 15})
	require.NoError(t, err)
	for _, v := range plan.Visits {
		assert.Equal(t, roles[v.DoctorName], v.Role)
	}
}

func TestGenerate_RoundRobin(t *testing.T) {
	g := newTestGenerator(t)
	doctors := []entity.Doctor{{Name: "Dr.X"}, {Name: "Dr.Y"}}

	plan, err := g.Generate(patientsNamed("A", "B", "C"), doctors, GenerateOptions{
		Strategy:  entity.AssignmentStrategyRoundRobin,
		StartDate: time.Now(),
		Duration:  60,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr.X", plan.Visits[0].DoctorName)
	assert.Equal(t, "Dr.Y", plan.Visits[1].DoctorName)
	assert.Equal(t, "Dr.X", plan.Visits[2].DoctorName)
}

func TestGenerate_WrapsPastMidnight(t *testing.T) {
	g := newTestGenerator(t)
	doctors := []entity.Doctor{{Name: "Dr.X"}}

	plan, err := g.Generate(patientsNamed("A", "B", "C", "D", "E"), doctors, GenerateOptions{StartDate: time.Now(), Duration: 240})
	require.NoError(t, err)
	require.Len(t, plan.Visits, 5)
	assert.True(t, plan.RolledPastMidnight)
	// 09:00 + 3*240 = 21:00 -> 01:00 next clock day
	assert.Equal(t, "21:00", plan.Visits[3].StartTime)
	assert.Equal(t, "01:00", plan.Visits[3].EndTime)
	assert.Equal(t, "01:00", plan.Visits[4].StartTime)
}

func TestGenerate_ManualModeOnlyNotices(t *testing.T) {
	g := newTestGenerator(t)

	plan, err := g.Generate(patientsNamed("A", "B"), []entity.Doctor{{Name: "Dr.X"}}, GenerateOptions{
		Mode:      entity.GenerationModeManual,
		StartDate: time.Now(),
		Duration:  60,
	})
	require.NoError(t, err)
	assert.Empty(t, plan.Visits)
	assert.Equal(t, []string{
		"Manual mode: assign patient A later.",
		"Manual mode: assign patient B later.",
	}, plan.Notices)
}

func TestGenerate_EmptyRoster(t *testing.T) {
	g := newTestGenerator(t)
	opts := GenerateOptions{StartDate: time.Now(), Duration: 60}

	_, err := g.Generate(nil, []entity.Doctor{{Name: "Dr.X"}}, opts)
	assert.ErrorIs(t, err, ErrEmptyRoster)

	_, err = g.Generate(patientsNamed("A"), nil, opts)
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestGenerate_RejectsBadOptions(t *testing.T) {
	g := newTestGenerator(t)
	patients := patientsNamed("A")
	doctors := []entity.Doctor{{Name: "Dr.X"}}

	_, err := g.Generate(patients, doctors, GenerateOptions{StartDate: time.Now(), Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	for _, minutes := range []int{7, 50, 255, 1000} {
		_, err = g.Generate(patients, doctors, GenerateOptions{StartDate: time.Now(), Duration: minutes})
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", minutes)
	}

	_, err = g.Generate(patients, doctors, GenerateOptions{Mode: "later", StartDate: time.Now(), Duration: 60})
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = g.Generate(patients, doctors, GenerateOptions{Strategy: "weighted", StartDate: time.Now(), Duration: 60})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNewScheduleGenerator_Validation(t *testing.T) {
	_, err := NewScheduleGenerator("9am", 7, "", 1, quietLogger())
	assert.Error(t, err)

	_, err = NewScheduleGenerator("09:00", 0, "", 1, quietLogger())
	assert.Error(t, err)

	_, err = NewScheduleGenerator("09:00", 7, "weighted", 1, quietLogger())
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

type fixedPicker struct{ name string }

func (p fixedPicker) Pick(_ int, doctors []entity.Doctor) entity.Doctor {
	for _, d := range doctors {
		if d.Name == p.name {
			return d
		}
	}
	return doctors[0]
}

func TestGenerate_WithPicker(t *testing.T) {
	g := newTestGenerator(t).WithPicker(entity.AssignmentStrategyRandom, fixedPicker{name: "Dr.Y"})
	doctors := []entity.Doctor{{Name: "Dr.X", Role: "GP"}, {Name: "Dr.Y", Role: "Nurse"}}

	plan, err := g.Generate(patientsNamed("A", "B"), doctors, GenerateOptions{StartDate: time.Now(), Duration: 60})
	require.NoError(t, err)
	for _, v := range plan.Visits {
		assert.Equal(t, "Dr.Y", v.DoctorName)
		assert.Equal(t, "Nurse", v.Role)
	}
}

func TestValidateDuration(t *testing.T) {
	for _, minutes := range []int{15, 30, 60, 225, 240} {
		assert.NoError(t, ValidateDuration(minutes), "duration %d", minutes)
	}
	for _, minutes := range []int{-15, 0, 7, 14, 50, 255, 1000} {
		assert.ErrorIs(t, ValidateDuration(minutes), ErrInvalidDuration, "duration %d", minutes)
	}
}

func TestGenerate_ConcurrentCallsShareRandomPicker(t *testing.T) {
	g := newTestGenerator(t)
	patients := patientsNamed("A", "B", "C", "D", "E", "F", "G", "H")
	doctors := []entity.Doctor{{Name: "Dr.X", Role: "GP"}, {Name: "Dr.Y", Role: "Nurse"}, {Name: "Dr.Z", Role: "GP"}}
	opts := GenerateOptions{Strategy: entity.AssignmentStrategyRandom, StartDate: time.Now(), Duration: 30}

	const workers = 8
	var wg sync.WaitGroup
	plans := make([]*GenerationPlan, workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			plans[w], errs[w] = g.Generate(patients, doctors, opts)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		require.Len(t, plans[w].Visits, len(patients))
		for _, visit := range plans[w].Visits {
			assert.Contains(t, []string{"Dr.X", "Dr.Y", "Dr.Z"}, visit.DoctorName)
		}
	}
}
