package service

import (
	"context"
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
)

type FocusSessionService struct {
	sessionRepository ports.FocusSessionRepository
	authResolver      ports.AuthResolver
}

func NewFocusSessionService(sessionRepository ports.FocusSessionRepository, authResolver ports.AuthResolver) *FocusSessionService {
	return &FocusSessionService{sessionRepository: sessionRepository, authResolver: authResolver}
}

func (s *FocusSessionService) Create(ctx context.Context, input domain.FocusSessionInput) (domain.FocusSession, error) {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return domain.FocusSession{}, err
	}

	session := domain.FocusSession{OwnerID: ownerID}
	session.Apply(input)
	return s.sessionRepository.Create(ctx, session)
}

func (s *FocusSessionService) List(ctx context.Context) ([]domain.FocusSession, error) {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessionRepository.ListByOwner(ctx, ownerID)
}

// ListByRange filters on startedAt only when both bounds are given.
func (s *FocusSessionService) ListByRange(ctx context.Context, start, end *time.Time) ([]domain.FocusSession, error) {
	if start == nil || end == nil {
		return s.List(ctx)
	}

	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessionRepository.ListByOwnerBetween(ctx, ownerID, *start, *end)
}

func (s *FocusSessionService) Get(ctx context.Context, id uint64) (domain.FocusSession, error) {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return domain.FocusSession{}, err
	}
	return s.sessionRepository.GetByIDAndOwner(ctx, id, ownerID)
}

func (s *FocusSessionService) Update(ctx context.Context, id uint64, input domain.FocusSessionInput) (domain.FocusSession, error) {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return domain.FocusSession{}, err
	}

	session, err := s.sessionRepository.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return domain.FocusSession{}, err
	}

	session.Apply(input)
	return s.sessionRepository.Update(ctx, session)
}

func (s *FocusSessionService) Delete(ctx context.Context, id uint64) error {
	ownerID, err := s.authResolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	session, err := s.sessionRepository.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return s.sessionRepository.Delete(ctx, session.ID, ownerID)
}

var _ ports.FocusSessionService = (*FocusSessionService)(nil)
