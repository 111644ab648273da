//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/dto"
)

type SessionIntegrationSuite struct {
	IntegrationSuiteBase
}

func TestSessionIntegrationSuite(t *testing.T) {
	suite.Run(t, new(SessionIntegrationSuite))
}

func (s *SessionIntegrationSuite) TestLifecycle() {
	rec := s.Request(http.MethodPost, "/api/pomodoro", "user-a",
		`{"startTime":"2025-04-10T09:00:00Z","endTime":"2025-04-10T09:25:00Z","duration":1500,"score":4,"notes":"deep work"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.FocusSessionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.NotZero(created.ID)
	path := fmt.Sprintf("/api/pomodoro/%d", created.ID)

	rec = s.Request(http.MethodPut, path, "user-a", `{"startTime":"2025-04-10T09:00:00Z","duration":1200}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.Request(http.MethodGet, path, "user-a", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var got dto.FocusSessionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(1200, got.Duration)
	s.Nil(got.EndTime)
	s.Nil(got.Score)

	s.Equal(http.StatusNotFound, s.Request(http.MethodGet, path, "user-b", "").Code)
	s.Equal(http.StatusNoContent, s.Request(http.MethodDelete, path, "user-a", "").Code)
	s.Equal(http.StatusNoContent, s.Request(http.MethodGet, "/api/pomodoro", "user-a", "").Code)
}

func (s *SessionIntegrationSuite) TestRejectsInvalidScore() {
	rec := s.Request(http.MethodPost, "/api/pomodoro", "user-a",
		`{"startTime":"2025-04-10T09:00:00Z","duration":1500,"score":9}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *SessionIntegrationSuite) createAt(startedAt time.Time) dto.FocusSessionResponse {
	rec := s.Request(http.MethodPost, "/api/pomodoro", "user-a",
		fmt.Sprintf(`{"startTime":%q,"duration":25}`, startedAt.Format(time.RFC3339)))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var session dto.FocusSessionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &session))
	return session
}

func (s *SessionIntegrationSuite) listRange(start, end time.Time) []uint64 {
	query := url.Values{}
	query.Set("startDate", start.Format(time.RFC3339))
	query.Set("endDate", end.Format(time.RFC3339))

	rec := s.Request(http.MethodGet, "/api/pomodoro?"+query.Encode(), "user-a", "")
	if rec.Code == http.StatusNoContent {
		return nil
	}
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var sessions []dto.FocusSessionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &sessions))
	ids := make([]uint64, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.ID)
	}
	return ids
}

func (s *SessionIntegrationSuite) TestListByRange_LastSevenDaysNewestFirst() {
	today := time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC)
	s.createAt(today.AddDate(0, 0, -10))
	fiveDaysAgo := s.createAt(today.AddDate(0, 0, -5))
	todays := s.createAt(today)

	s.Equal([]uint64{todays.ID, fiveDaysAgo.ID}, s.listRange(today.AddDate(0, 0, -7), today.Add(time.Hour)))
}

func (s *SessionIntegrationSuite) TestListByRange_IncludesBothBounds() {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 7, 23, 59, 59, 0, time.UTC)

	s.createAt(start.Add(-time.Second))
	atStart := s.createAt(start)
	atEnd := s.createAt(end)
	s.createAt(end.Add(time.Second))

	s.Equal([]uint64{atEnd.ID, atStart.ID}, s.listRange(start, end))
}
