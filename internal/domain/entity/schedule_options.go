package entity

// GenerationMode selects who assigns doctors during schedule generation.
type GenerationMode string

const (
	GenerationModeAutomatic GenerationMode = "automatic"
	// GenerationModeManual only produces advisory notices.
	GenerationModeManual GenerationMode = "manual"
)

// AssignmentStrategy selects how Automatic mode picks a doctor.
type AssignmentStrategy string

const (
	AssignmentStrategyRandom     AssignmentStrategy = "random"
	AssignmentStrategyRoundRobin AssignmentStrategy = "round_robin"
)

// Collection names a table of the session record store.
type Collection string

const (
	CollectionPatients Collection = "patients"
	CollectionDoctors  Collection = "doctors"
	CollectionSchedule Collection = "schedule"
)
