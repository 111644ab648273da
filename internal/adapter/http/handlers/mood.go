package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/dto"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/mapper"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
	"github.com/iain-kirkham/Mental-Health-App/pkg/apierrors"
)

type MoodEntryHandler struct {
	moodEntryService ports.MoodEntryService
}

func NewMoodEntryHandler(moodEntryService ports.MoodEntryService) *MoodEntryHandler {
	return &MoodEntryHandler{moodEntryService: moodEntryService}
}

func (h *MoodEntryHandler) CreateMoodEntry(c *gin.Context) {
	var req dto.MoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	entry, err := h.moodEntryService.Create(c.Request.Context(), mapper.ToMoodEntryInput(req))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgMoodEntryNotFound, apierrors.MsgFailCreateMoodEntry, "failed to create mood entry")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToMoodEntryResponse(entry))
}

// ListMoodEntries answers 204 when the caller has no entry in the range.
func (h *MoodEntryHandler) ListMoodEntries(c *gin.Context) {
	start, end, ok := instantRangeParams(c)
	if !ok {
		return
	}

	entries, err := h.moodEntryService.ListByRange(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgMoodEntryNotFound, apierrors.MsgFailListMoodEntries, "failed to list mood entries")
		return
	}

	if len(entries) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, mapper.ToMoodEntryResponses(entries))
}

func (h *MoodEntryHandler) GetMoodEntry(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.moodEntryService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgMoodEntryNotFound, apierrors.MsgFailGetMoodEntry,
			"failed to get mood entry", zap.Uint64("mood_entry_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToMoodEntryResponse(entry))
}

func (h *MoodEntryHandler) UpdateMoodEntry(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.MoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	entry, err := h.moodEntryService.Update(c.Request.Context(), id, mapper.ToMoodEntryInput(req))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgMoodEntryNotFound, apierrors.MsgFailUpdateMoodEntry,
			"failed to update mood entry", zap.Uint64("mood_entry_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToMoodEntryResponse(entry))
}

func (h *MoodEntryHandler) DeleteMoodEntry(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.moodEntryService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, apierrors.MsgMoodEntryNotFound, apierrors.MsgFailDeleteMoodEntry,
			"failed to delete mood entry", zap.Uint64("mood_entry_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}
