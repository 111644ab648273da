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

type FocusSessionHandler struct {
	focusSessionService ports.FocusSessionService
}

func NewFocusSessionHandler(focusSessionService ports.FocusSessionService) *FocusSessionHandler {
	return &FocusSessionHandler{focusSessionService: focusSessionService}
}

func (h *FocusSessionHandler) CreateFocusSession(c *gin.Context) {
	var req dto.FocusSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	session, err := h.focusSessionService.Create(c.Request.Context(), mapper.ToFocusSessionInput(req))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFocusSessionNotFound, apierrors.MsgFailCreateFocusSession, "failed to create focus session")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToFocusSessionResponse(session))
}

// ListFocusSessions answers 204 when the caller has no session in the range.
func (h *FocusSessionHandler) ListFocusSessions(c *gin.Context) {
	start, end, ok := instantRangeParams(c)
	if !ok {
		return
	}

	sessions, err := h.focusSessionService.ListByRange(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFocusSessionNotFound, apierrors.MsgFailListFocusSessions, "failed to list focus sessions")
		return
	}

	if len(sessions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, mapper.ToFocusSessionResponses(sessions))
}

func (h *FocusSessionHandler) GetFocusSession(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	session, err := h.focusSessionService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFocusSessionNotFound, apierrors.MsgFailGetFocusSession,
			"failed to get focus session", zap.Uint64("focus_session_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToFocusSessionResponse(session))
}

func (h *FocusSessionHandler) UpdateFocusSession(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.FocusSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	session, err := h.focusSessionService.Update(c.Request.Context(), id, mapper.ToFocusSessionInput(req))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFocusSessionNotFound, apierrors.MsgFailUpdateFocusSession,
			"failed to update focus session", zap.Uint64("focus_session_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToFocusSessionResponse(session))
}

func (h *FocusSessionHandler) DeleteFocusSession(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.focusSessionService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, apierrors.MsgFocusSessionNotFound, apierrors.MsgFailDeleteFocusSession,
			"failed to delete focus session", zap.Uint64("focus_session_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}
