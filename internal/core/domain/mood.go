package domain

import "time"

const (
	MinScore = 1
	MaxScore = 5
)

// MoodEntry is a single mood record. OwnerID is always the authenticated
// caller and never leaves the service boundary.
type MoodEntry struct {
	ID         uint64
	OwnerID    string
	MoodScore  int
	RecordedAt time.Time
	Factors    []string
	Notes      *string
}

type MoodEntryInput struct {
	MoodScore  int
	RecordedAt time.Time
	Factors    []string
	Notes      *string
}

// Apply replaces every mutable field. ID and OwnerID are left untouched.
func (e *MoodEntry) Apply(input MoodEntryInput) {
	e.MoodScore = input.MoodScore
	e.RecordedAt = input.RecordedAt
	e.Factors = append([]string(nil), input.Factors...)
	e.Notes = input.Notes
}
