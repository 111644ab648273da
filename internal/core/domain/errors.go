package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the kind shared by every "record absent" error. Handlers match
// on it to answer 404 regardless of the slice.
var ErrNotFound = errors.New("not found")

var (
	ErrMoodEntryNotFound    = fmt.Errorf("mood entry %w", ErrNotFound)
	ErrFocusSessionNotFound = fmt.Errorf("focus session %w", ErrNotFound)
	ErrTaskNotFound         = fmt.Errorf("task %w", ErrNotFound)
	ErrSubTaskNotFound      = fmt.Errorf("subtask %w", ErrNotFound)

	ErrAuthenticationMissing = errors.New("authentication missing")
)
