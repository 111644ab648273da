package dto

import "time"

type FocusSessionRequest struct {
	StartTime *time.Time `json:"startTime" binding:"required"`
	EndTime   *time.Time `json:"endTime"`
	Duration  *int       `json:"duration" binding:"required,min=0"`
	Score     *int       `json:"score" binding:"omitempty,min=1,max=5"`
	Notes     *string    `json:"notes" binding:"omitempty,max=65535"`
}

type FocusSessionResponse struct {
	ID        uint64     `json:"id"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Duration  int        `json:"duration"`
	Score     *int       `json:"score"`
	Notes     *string    `json:"notes"`
}
