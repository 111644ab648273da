package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
)

const focusSessionColumns = "id, user_id, start_time, end_time, duration, score, notes"

const (
	listFocusSessionsQuery = `
SELECT ` + focusSessionColumns + `
FROM pomodoro_sessions
WHERE user_id = ?
ORDER BY start_time DESC, id DESC;
`
	listFocusSessionsBetweenQuery = `
SELECT ` + focusSessionColumns + `
FROM pomodoro_sessions
WHERE user_id = ? AND start_time BETWEEN ? AND ?
ORDER BY start_time DESC, id DESC;
`
	getFocusSessionQuery = `
SELECT ` + focusSessionColumns + `
FROM pomodoro_sessions
WHERE id = ? AND user_id = ?;
`
	insertFocusSessionQuery = `
INSERT INTO pomodoro_sessions (user_id, start_time, end_time, duration, score, notes)
VALUES (?, ?, ?, ?, ?, ?);
`
	updateFocusSessionQuery = `
UPDATE pomodoro_sessions
SET start_time = ?, end_time = ?, duration = ?, score = ?, notes = ?
WHERE id = ? AND user_id = ?;
`
	deleteFocusSessionQuery = `DELETE FROM pomodoro_sessions WHERE id = ? AND user_id = ?;`
)

type FocusSessionRepository struct {
	db *sqlx.DB
}

type focusSessionRow struct {
	ID        uint64         `db:"id"`
	UserID    string         `db:"user_id"`
	StartTime time.Time      `db:"start_time"`
	EndTime   sql.NullTime   `db:"end_time"`
	Duration  int            `db:"duration"`
	Score     sql.NullInt64  `db:"score"`
	Notes     sql.NullString `db:"notes"`
}

var _ ports.FocusSessionRepository = (*FocusSessionRepository)(nil)

func NewFocusSessionRepository(db *sqlx.DB) *FocusSessionRepository {
	return &FocusSessionRepository{db: db}
}

func (r *FocusSessionRepository) Create(ctx context.Context, session domain.FocusSession) (domain.FocusSession, error) {
	session = normalizeFocusSession(session)
	result, err := r.db.ExecContext(ctx, insertFocusSessionQuery,
		session.OwnerID, session.StartedAt, session.EndedAt, session.DurationMinutes, session.ProductivityScore, session.Notes)
	if err != nil {
		return domain.FocusSession{}, fmt.Errorf("insert focus session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.FocusSession{}, fmt.Errorf("read focus session id: %w", err)
	}

	session.ID = uint64(id)
	return session, nil
}

func (r *FocusSessionRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.FocusSession, error) {
	return r.list(ctx, listFocusSessionsQuery, ownerID)
}

func (r *FocusSessionRepository) ListByOwnerBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.FocusSession, error) {
	return r.list(ctx, listFocusSessionsBetweenQuery, ownerID, start.UTC(), end.UTC())
}

func (r *FocusSessionRepository) GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (domain.FocusSession, error) {
	var row focusSessionRow
	if err := r.db.GetContext(ctx, &row, getFocusSessionQuery, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.FocusSession{}, domain.ErrFocusSessionNotFound
		}
		return domain.FocusSession{}, err
	}
	return mapFocusSessionRowToDomain(row), nil
}

func (r *FocusSessionRepository) Update(ctx context.Context, session domain.FocusSession) (domain.FocusSession, error) {
	session = normalizeFocusSession(session)
	if _, err := r.db.ExecContext(ctx, updateFocusSessionQuery,
		session.StartedAt, session.EndedAt, session.DurationMinutes, session.ProductivityScore, session.Notes,
		session.ID, session.OwnerID); err != nil {
		return domain.FocusSession{}, fmt.Errorf("update focus session %d: %w", session.ID, err)
	}
	return session, nil
}

func (r *FocusSessionRepository) Delete(ctx context.Context, id uint64, ownerID string) error {
	if _, err := r.db.ExecContext(ctx, deleteFocusSessionQuery, id, ownerID); err != nil {
		return fmt.Errorf("delete focus session %d: %w", id, err)
	}
	return nil
}

func (r *FocusSessionRepository) list(ctx context.Context, query string, args ...any) ([]domain.FocusSession, error) {
	var rows []focusSessionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	sessions := make([]domain.FocusSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, mapFocusSessionRowToDomain(row))
	}
	return sessions, nil
}

func normalizeFocusSession(session domain.FocusSession) domain.FocusSession {
	session.StartedAt = session.StartedAt.UTC()
	if session.EndedAt != nil {
		value := session.EndedAt.UTC()
		session.EndedAt = &value
	}
	return session
}

func mapFocusSessionRowToDomain(row focusSessionRow) domain.FocusSession {
	session := domain.FocusSession{
		ID:              row.ID,
		OwnerID:         row.UserID,
		StartedAt:       row.StartTime.UTC(),
		DurationMinutes: row.Duration,
	}

	if row.EndTime.Valid {
		value := row.EndTime.Time.UTC()
		session.EndedAt = &value
	}

	if row.Score.Valid {
		value := int(row.Score.Int64)
		session.ProductivityScore = &value
	}

	if row.Notes.Valid {
		value := row.Notes.String
		session.Notes = &value
	}

	return session
}
