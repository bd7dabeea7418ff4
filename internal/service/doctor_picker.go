package service

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"homecare-scheduler/internal/domain/entity"
)

// DoctorPicker chooses the doctor for the i-th generated visit. Callers
// guarantee doctors is non-empty. Implementations are shared by concurrent
// requests and must be safe for concurrent use.
type DoctorPicker interface {
	Pick(index int, doctors []entity.Doctor) entity.Doctor
}

type randomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker picks uniformly at random with replacement. A zero seed
// seeds from the wall clock.
func NewRandomPicker(seed int64) DoctorPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomPicker{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

func (p *randomPicker) Pick(_ int, doctors []entity.Doctor) entity.Doctor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return doctors[p.rng.IntN(len(doctors))]
}

type roundRobinPicker struct{}

// NewRoundRobinPicker cycles through doctors in table order.
func NewRoundRobinPicker() DoctorPicker {
	return roundRobinPicker{}
}

func (roundRobinPicker) Pick(index int, doctors []entity.Doctor) entity.Doctor {
	return doctors[index%len(doctors)]
}

// NewDoctorPicker builds the picker for a strategy name.
func NewDoctorPicker(strategy entity.AssignmentStrategy, seed int64) (DoctorPicker, error) {
	switch strategy {
	case entity.AssignmentStrategyRandom, "":
		return NewRandomPicker(seed), nil
	case entity.AssignmentStrategyRoundRobin:
		return NewRoundRobinPicker(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
