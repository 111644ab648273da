package domain

import "time"

// FocusSession is a timed work (pomodoro) session. EndedAt is nil while the
// session is open.
type FocusSession struct {
	ID                uint64
	OwnerID           string
	StartedAt         time.Time
	EndedAt           *time.Time
	DurationMinutes   int
	ProductivityScore *int
	Notes             *string
}

type FocusSessionInput struct {
	StartedAt         time.Time
	EndedAt           *time.Time
	DurationMinutes   int
	ProductivityScore *int
	Notes             *string
}

func (s *FocusSession) Apply(input FocusSessionInput) {
	s.StartedAt = input.StartedAt
	s.EndedAt = input.EndedAt
	s.DurationMinutes = input.DurationMinutes
	s.ProductivityScore = input.ProductivityScore
	s.Notes = input.Notes
}
