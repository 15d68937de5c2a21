package records

import "time"

// DateLayout is the canonical form in which record dates are persisted.
// Lexicographic order on it matches chronological order, which the repo
// relies on for all date ordering and window filtering.
const DateLayout = "2006-01-02"

const (
	MinWeight = 1
	MaxWeight = 1000
)

// Exercise is one of the fixed set of tracked lifts.
type Exercise string

const (
	ExerciseBench    Exercise = "Bench"
	ExerciseSquat    Exercise = "Squat"
	ExerciseDeadlift Exercise = "Deadlift"
)

func (e Exercise) String() string {
	return string(e)
}

func (e Exercise) IsValid() bool {
	switch e {
	case ExerciseBench, ExerciseSquat, ExerciseDeadlift:
		return true
	default:
		return false
	}
}

// AllExercises lists the closed exercise set, in menu order.
func AllExercises() []Exercise {
	return []Exercise{ExerciseBench, ExerciseSquat, ExerciseDeadlift}
}

// Record is a single logged lift result. Append-only: records are created
// by the add-record conversation and removed only by explicit user action.
// Duplicates per (user, exercise, date) are allowed and accumulate.
type Record struct {
	ID       int       `json:"id"`
	UserID   int64     `json:"userId"`
	Exercise Exercise  `json:"exercise"`
	Weight   int       `json:"weight"`
	Date     time.Time `json:"date"`
}

// DateString renders the record date in its persisted form.
func (r Record) DateString() string {
	return r.Date.Format(DateLayout)
}

// WeightValid reports whether the weight is within the accepted range.
func WeightValid(weight int) bool {
	return weight >= MinWeight && weight <= MaxWeight
}
