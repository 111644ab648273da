package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/middleware"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/validation"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/pkg/apierrors"
)

func respondError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// respondBindingError answers 400, listing the invalid fields when the error
// comes from validation and a generic payload error otherwise.
func respondBindingError(c *gin.Context, err error) {
	fieldErrs, ok := validation.FromBindingError(err)
	if !ok {
		var built validation.Errors
		if !errors.As(err, &built) {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
			return
		}
		fieldErrs = built
	}

	lang := middleware.GetLang(c)
	fields := make([]apierrors.FieldErr, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		message := apierrors.GetTransErrorMsgWithData(fieldErr.MessageID(), lang, map[string]any{
			"Field": fieldErr.Field,
			"Param": fieldErr.Param,
		})
		fields = append(fields, apierrors.FieldErr{Field: fieldErr.Field, Message: message})
	}

	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateFieldsError(http.StatusBadRequest, apierrors.MsgValidationFailed, lang, fields),
	)
}

// respondServiceError maps service errors: NotFound kinds to 404, a missing
// identity to 401 and anything else to a logged 500.
func respondServiceError(c *gin.Context, err error, notFoundKey, failKey, logMessage string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundKey)
	case errors.Is(err, domain.ErrAuthenticationMissing):
		respondError(c, http.StatusUnauthorized, apierrors.MsgUnauthorized)
	default:
		fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		zap.L().Error(logMessage, fields...)
		respondError(c, http.StatusInternalServerError, failKey)
	}
}

// idParam parses a positive path id, answering 400 when it is malformed.
func idParam(c *gin.Context, name string) (uint64, bool) {
	id, err := validation.ParseID(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return 0, false
	}
	return id, true
}

// instantRangeParams reads the optional startDate and endDate query
// instants, answering 400 when one is malformed.
func instantRangeParams(c *gin.Context) (*time.Time, *time.Time, bool) {
	start, err := validation.ParseOptionalInstant(c.Query("startDate"))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidDateTime)
		return nil, nil, false
	}

	end, err := validation.ParseOptionalInstant(c.Query("endDate"))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidDateTime)
		return nil, nil, false
	}

	return start, end, true
}

// completedParam reads the mandatory completed query flag.
func completedParam(c *gin.Context) (bool, bool) {
	completed, err := validation.ParseCompleted(c.Query("completed"))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCompleted)
		return false, false
	}
	return completed, true
}
