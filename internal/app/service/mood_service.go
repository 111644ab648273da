package service

import (
	"context"
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
)

type MoodEntryService struct {
	moodRepository ports.MoodEntryRepository
	authResolver   ports.AuthResolver
}

func NewMoodEntryService(moodRepository ports.MoodEntryRepository, authResolver ports.AuthResolver) *MoodEntryService {
	return &MoodEntryService{moodRepository: moodRepository, authResolver: authResolver}
}

func (s *MoodEntryService) Create(ctx context.Context, input domain.MoodEntryInput) (domain.MoodEntry, error) {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return domain.MoodEntry{}, err
	}

	entry := domain.MoodEntry{OwnerID: ownerID}
	entry.Apply(input)
	return s.moodRepository.Create(ctx, entry)
}

func (s *MoodEntryService) List(ctx context.Context) ([]domain.MoodEntry, error) {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.moodRepository.ListByOwner(ctx, ownerID)
}

// ListByRange filters on recordedAt only when both bounds are given; a partial
// range falls back to the full list.
func (s *MoodEntryService) ListByRange(ctx context.Context, start, end *time.Time) ([]domain.MoodEntry, error) {
	if start == nil || end == nil {
		return s.List(ctx)
	}

	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.moodRepository.ListByOwnerBetween(ctx, ownerID, *start, *end)
}

func (s *MoodEntryService) Get(ctx context.Context, id uint64) (domain.MoodEntry, error) {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return domain.MoodEntry{}, err
	}
	return s.moodRepository.GetByIDAndOwner(ctx, id, ownerID)
}

func (s *MoodEntryService) Update(ctx context.Context, id uint64, input domain.MoodEntryInput) (domain.MoodEntry, error) {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return domain.MoodEntry{}, err
	}

	entry, err := s.moodRepository.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return domain.MoodEntry{}, err
	}

	entry.Apply(input)
	return s.moodRepository.Update(ctx, entry)
}

func (s *MoodEntryService) Delete(ctx context.Context, id uint64) error {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	entry, err := s.moodRepository.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return s.moodRepository.Delete(ctx, entry.ID, ownerID)
}

var _ ports.MoodEntryService = (*MoodEntryService)(nil)
