package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
)

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateTime  = errors.New("invalid date time")
	ErrInvalidCompleted = errors.New("invalid completed flag")
)

// ParseID accepts strictly positive decimal identifiers.
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// ParseOptionalInstant parses an RFC 3339 instant. An empty value yields nil.
// A space is read as "+": query decoding turns an unescaped "+02:00" offset
// into " 02:00", and RFC 3339 never contains a space.
func ParseOptionalInstant(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	raw = strings.ReplaceAll(raw, " ", "+")

	instant, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	instant = instant.UTC()
	return &instant, nil
}

// ParseCompleted parses the mandatory completed query flag.
func ParseCompleted(raw string) (bool, error) {
	completed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, ErrInvalidCompleted
	}
	return completed, nil
}
