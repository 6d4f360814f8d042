package onboarding

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/repository"
)

type Service struct {
	users      UserRepository
	eventTypes EventTypeRepository
	log        *zap.Logger
}

func NewService(users UserRepository, eventTypes EventTypeRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		users:      users,
		eventTypes: eventTypes,
		log:        log,
	}
}

// DefaultEventTypes are the templates seeded on first onboarding completion.
func DefaultEventTypes() []domain.EventType {
	return []domain.EventType{
		{Title: "15 Min Meeting", Slug: "15min", Length: 15},
		{Title: "30 Min Meeting", Slug: "30min", Length: 30},
		{Title: "Secret Meeting", Slug: "secret", Length: 15, Hidden: true},
	}
}

// UpdateProfile applies a partial profile mutation and tags the outcome so
// the caller can distinguish an avatar-only save from a profile save.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*UpdateProfileResponse, error) {
	upd := repository.ProfileUpdate{
		Bio:                 req.Bio,
		AvatarURL:           req.Avatar,
		CompletedOnboarding: req.CompletedOnboarding,
	}
	if upd.Empty() {
		return nil, ErrEmptyUpdate
	}

	user, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	kind := KindProfileSaved
	if req.Avatar != nil && req.Bio == nil && req.CompletedOnboarding == nil {
		kind = KindAvatarSaved
	}

	return &UpdateProfileResponse{Kind: kind, User: user}, nil
}

// Submit persists the biography, seeds the default event types when the user
// owns none yet, then marks onboarding complete. Seeding is best effort:
// individual failures are logged and never block completion.
func (s *Service) Submit(ctx context.Context, userID int64, bio string) (*SubmitResponse, error) {
	user, err := s.users.UpdateProfile(ctx, userID, repository.ProfileUpdate{Bio: &bio})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	count, err := s.eventTypes.CountByUser(ctx, userID)
	switch {
	case err != nil:
		s.log.Warn("counting event types failed, skipping default seeding",
			zap.Int64("user_id", userID), zap.Error(err))
	case count == 0:
		s.seedDefaults(ctx, userID)
	}

	done := true
	user, err = s.users.UpdateProfile(ctx, userID, repository.ProfileUpdate{CompletedOnboarding: &done})
	if err != nil {
		return nil, err
	}

	return &SubmitResponse{RedirectURL: "/", User: user}, nil
}

// seedDefaults issues the three creates concurrently and waits for all to
// settle. Zero, some, or all may persist when the store is flaky.
func (s *Service) seedDefaults(ctx context.Context, userID int64) {
	var wg sync.WaitGroup
	for _, tmpl := range DefaultEventTypes() {
		wg.Add(1)
		go func(et domain.EventType) {
			defer wg.Done()
			et.UserID = userID
			if err := s.eventTypes.Create(ctx, &et); err != nil {
				s.log.Warn("seeding default event type failed",
					zap.String("slug", et.Slug),
					zap.Int64("user_id", userID),
					zap.Error(err))
			}
		}(tmpl)
	}
	wg.Wait()
}
