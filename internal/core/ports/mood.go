package ports

import (
	"context"
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
)

type MoodEntryRepository interface {
	Create(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.MoodEntry, error)
	ListByOwnerBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.MoodEntry, error)
	GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (domain.MoodEntry, error)
	Update(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error)
	Delete(ctx context.Context, id uint64, ownerID string) error
}

type MoodEntryService interface {
	Create(ctx context.Context, input domain.MoodEntryInput) (domain.MoodEntry, error)
	List(ctx context.Context) ([]domain.MoodEntry, error)
	ListByRange(ctx context.Context, start, end *time.Time) ([]domain.MoodEntry, error)
	Get(ctx context.Context, id uint64) (domain.MoodEntry, error)
	Update(ctx context.Context, id uint64, input domain.MoodEntryInput) (domain.MoodEntry, error)
	Delete(ctx context.Context, id uint64) error
}
