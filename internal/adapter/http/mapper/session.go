package mapper

import (
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/dto"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
)

// ToFocusSessionInput expects a request that already passed binding validation.
func ToFocusSessionInput(req dto.FocusSessionRequest) domain.FocusSessionInput {
	input := domain.FocusSessionInput{
		StartedAt:         normalizeInstant(*req.StartTime),
		DurationMinutes:   *req.Duration,
		ProductivityScore: req.Score,
		Notes:             req.Notes,
	}

	if req.EndTime != nil {
		value := normalizeInstant(*req.EndTime)
		input.EndedAt = &value
	}

	return input
}

func ToFocusSessionResponses(sessions []domain.FocusSession) []dto.FocusSessionResponse {
	items := make([]dto.FocusSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, ToFocusSessionResponse(session))
	}
	return items
}

func ToFocusSessionResponse(session domain.FocusSession) dto.FocusSessionResponse {
	item := dto.FocusSessionResponse{
		ID:        session.ID,
		StartTime: normalizeInstant(session.StartedAt),
		Duration:  session.DurationMinutes,
		Score:     session.ProductivityScore,
		Notes:     session.Notes,
	}

	if session.EndedAt != nil {
		value := normalizeInstant(*session.EndedAt)
		item.EndTime = &value
	}

	return item
}
