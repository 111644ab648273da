package dto

import "time"

type MoodEntryRequest struct {
	MoodScore *int       `json:"moodScore" binding:"required,min=1,max=5"`
	DateTime  *time.Time `json:"dateTime" binding:"required"`
	Factors   []string   `json:"factors" binding:"omitempty,max=50,dive,max=255"`
	Notes     *string    `json:"notes" binding:"omitempty,max=65535"`
}

type MoodEntryResponse struct {
	ID        uint64    `json:"id"`
	MoodScore int       `json:"moodScore"`
	DateTime  time.Time `json:"dateTime"`
	Factors   []string  `json:"factors"`
	Notes     *string   `json:"notes"`
}
