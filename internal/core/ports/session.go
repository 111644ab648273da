package ports

import (
	"context"
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
)

type FocusSessionRepository interface {
	Create(ctx context.Context, session domain.FocusSession) (domain.FocusSession, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.FocusSession, error)
	ListByOwnerBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.FocusSession, error)
	GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (domain.FocusSession, error)
	Update(ctx context.Context, session domain.FocusSession) (domain.FocusSession, error)
	Delete(ctx context.Context, id uint64, ownerID string) error
}

type FocusSessionService interface {
	Create(ctx context.Context, input domain.FocusSessionInput) (domain.FocusSession, error)
	List(ctx context.Context) ([]domain.FocusSession, error)
	ListByRange(ctx context.Context, start, end *time.Time) ([]domain.FocusSession, error)
	Get(ctx context.Context, id uint64) (domain.FocusSession, error)
	Update(ctx context.Context, id uint64, input domain.FocusSessionInput) (domain.FocusSession, error)
	Delete(ctx context.Context, id uint64) error
}
