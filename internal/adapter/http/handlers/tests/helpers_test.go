package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/iain-kirkham/Mental-Health-App/internal/adapter/http"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/handlers"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/middleware"
	"github.com/iain-kirkham/Mental-Health-App/pkg/apierrors"
	"github.com/iain-kirkham/Mental-Health-App/pkg/translator"
)

type testServices struct {
	mood    *moodEntryServiceMock
	session *focusSessionServiceMock
	task    *taskServiceMock
	pinger  *pingerMock
}

func newTestServices() testServices {
	return testServices{
		mood:    new(moodEntryServiceMock),
		session: new(focusSessionServiceMock),
		task:    new(taskServiceMock),
		pinger:  new(pingerMock),
	}
}

func (s testServices) assertExpectations(t *testing.T) {
	s.mood.AssertExpectations(t)
	s.session.AssertExpectations(t)
	s.task.AssertExpectations(t)
	s.pinger.AssertExpectations(t)
}

func newRouter(s testServices) *gin.Engine {
	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(s.pinger),
		MoodEntry:    handlers.NewMoodEntryHandler(s.mood),
		FocusSession: handlers.NewFocusSessionHandler(s.session),
		Task:         handlers.NewTaskHandler(s.task),
	})
	return router
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.Err {
	t.Helper()

	var body apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.ErrDetails
}

func fieldNames(fields []apierrors.FieldErr) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Field)
	}
	return names
}

func strPtr(value string) *string {
	return &value
}

func intPtr(value int) *int {
	return &value
}
