package mapper

import (
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/dto"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
)

// ToMoodEntryInput expects a request that already passed binding validation.
func ToMoodEntryInput(req dto.MoodEntryRequest) domain.MoodEntryInput {
	factors := make([]string, 0, len(req.Factors))
	factors = append(factors, req.Factors...)

	return domain.MoodEntryInput{
		MoodScore:  *req.MoodScore,
		RecordedAt: normalizeInstant(*req.DateTime),
		Factors:    factors,
		Notes:      req.Notes,
	}
}

func ToMoodEntryResponses(entries []domain.MoodEntry) []dto.MoodEntryResponse {
	items := make([]dto.MoodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToMoodEntryResponse(entry))
	}
	return items
}

func ToMoodEntryResponse(entry domain.MoodEntry) dto.MoodEntryResponse {
	item := dto.MoodEntryResponse{
		ID:        entry.ID,
		MoodScore: entry.MoodScore,
		DateTime:  normalizeInstant(entry.RecordedAt),
		Factors:   make([]string, 0, len(entry.Factors)),
		Notes:     entry.Notes,
	}
	item.Factors = append(item.Factors, entry.Factors...)
	return item
}

// normalizeInstant matches the microsecond precision of the datetime columns.
func normalizeInstant(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
