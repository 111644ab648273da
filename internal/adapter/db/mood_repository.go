package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
)

const moodEntryColumns = "id, user_id, mood_score, recorded_at, factors, notes"

const (
	listMoodEntriesQuery = `
SELECT ` + moodEntryColumns + `
FROM mood_entries
WHERE user_id = ?
ORDER BY recorded_at DESC, id DESC;
`
	listMoodEntriesBetweenQuery = `
SELECT ` + moodEntryColumns + `
FROM mood_entries
WHERE user_id = ? AND recorded_at BETWEEN ? AND ?
ORDER BY recorded_at DESC, id DESC;
`
	getMoodEntryQuery = `
SELECT ` + moodEntryColumns + `
FROM mood_entries
WHERE id = ? AND user_id = ?;
`
	insertMoodEntryQuery = `
INSERT INTO mood_entries (user_id, mood_score, recorded_at, factors, notes)
VALUES (?, ?, ?, ?, ?);
`
	updateMoodEntryQuery = `
UPDATE mood_entries
SET mood_score = ?, recorded_at = ?, factors = ?, notes = ?
WHERE id = ? AND user_id = ?;
`
	deleteMoodEntryQuery = `DELETE FROM mood_entries WHERE id = ? AND user_id = ?;`
)

type MoodEntryRepository struct {
	db *sqlx.DB
}

type moodEntryRow struct {
	ID         uint64         `db:"id"`
	UserID     string         `db:"user_id"`
	MoodScore  int            `db:"mood_score"`
	RecordedAt time.Time      `db:"recorded_at"`
	Factors    []byte         `db:"factors"`
	Notes      sql.NullString `db:"notes"`
}

var _ ports.MoodEntryRepository = (*MoodEntryRepository)(nil)

func NewMoodEntryRepository(db *sqlx.DB) *MoodEntryRepository {
	return &MoodEntryRepository{db: db}
}

func (r *MoodEntryRepository) Create(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	factors, err := encodeFactors(entry.Factors)
	if err != nil {
		return domain.MoodEntry{}, err
	}

	result, err := r.db.ExecContext(ctx, insertMoodEntryQuery,
		entry.OwnerID, entry.MoodScore, entry.RecordedAt.UTC(), factors, entry.Notes)
	if err != nil {
		return domain.MoodEntry{}, fmt.Errorf("insert mood entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.MoodEntry{}, fmt.Errorf("read mood entry id: %w", err)
	}

	entry.ID = uint64(id)
	entry.RecordedAt = entry.RecordedAt.UTC()
	return entry, nil
}

func (r *MoodEntryRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.MoodEntry, error) {
	return r.list(ctx, listMoodEntriesQuery, ownerID)
}

func (r *MoodEntryRepository) ListByOwnerBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.MoodEntry, error) {
	return r.list(ctx, listMoodEntriesBetweenQuery, ownerID, start.UTC(), end.UTC())
}

func (r *MoodEntryRepository) GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (domain.MoodEntry, error) {
	var row moodEntryRow
	if err := r.db.GetContext(ctx, &row, getMoodEntryQuery, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.MoodEntry{}, domain.ErrMoodEntryNotFound
		}
		return domain.MoodEntry{}, err
	}
	return mapMoodEntryRowToDomain(row)
}

func (r *MoodEntryRepository) Update(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	factors, err := encodeFactors(entry.Factors)
	if err != nil {
		return domain.MoodEntry{}, err
	}

	if _, err := r.db.ExecContext(ctx, updateMoodEntryQuery,
		entry.MoodScore, entry.RecordedAt.UTC(), factors, entry.Notes, entry.ID, entry.OwnerID); err != nil {
		return domain.MoodEntry{}, fmt.Errorf("update mood entry %d: %w", entry.ID, err)
	}

	entry.RecordedAt = entry.RecordedAt.UTC()
	return entry, nil
}

func (r *MoodEntryRepository) Delete(ctx context.Context, id uint64, ownerID string) error {
	if _, err := r.db.ExecContext(ctx, deleteMoodEntryQuery, id, ownerID); err != nil {
		return fmt.Errorf("delete mood entry %d: %w", id, err)
	}
	return nil
}

func (r *MoodEntryRepository) list(ctx context.Context, query string, args ...any) ([]domain.MoodEntry, error) {
	var rows []moodEntryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	entries := make([]domain.MoodEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := mapMoodEntryRowToDomain(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func mapMoodEntryRowToDomain(row moodEntryRow) (domain.MoodEntry, error) {
	entry := domain.MoodEntry{
		ID:         row.ID,
		OwnerID:    row.UserID,
		MoodScore:  row.MoodScore,
		RecordedAt: row.RecordedAt.UTC(),
		Factors:    []string{},
	}

	if len(row.Factors) > 0 {
		if err := json.Unmarshal(row.Factors, &entry.Factors); err != nil {
			return domain.MoodEntry{}, fmt.Errorf("decode factors of mood entry %d: %w", row.ID, err)
		}
		if entry.Factors == nil {
			entry.Factors = []string{}
		}
	}

	if row.Notes.Valid {
		value := row.Notes.String
		entry.Notes = &value
	}

	return entry, nil
}

func encodeFactors(factors []string) ([]byte, error) {
	if factors == nil {
		factors = []string{}
	}
	encoded, err := json.Marshal(factors)
	if err != nil {
		return nil, fmt.Errorf("encode factors: %w", err)
	}
	return encoded, nil
}
