package profile

import (
	"context"

	"nutrilog/domain"
	"nutrilog/entities"
)

type (
	ProfileService interface {
		GetProfile(ctx context.Context) (entities.Profile, error)
		SaveProfile(ctx context.Context, req domain.SaveProfileRequest) (entities.Profile, error)
	}

	profileService struct {
		profileRepository ProfileRepository
	}
)

func NewProfileService(profileRepository ProfileRepository) ProfileService {
	return &profileService{profileRepository: profileRepository}
}

func (s *profileService) GetProfile(ctx context.Context) (entities.Profile, error) {
	return s.profileRepository.GetProfile(ctx)
}

// SaveProfile replaces the profile wholesale. When every stat is present
// the targets are recomputed server-side; on a partial profile the
// submitted targets are stored as sent.
func (s *profileService) SaveProfile(ctx context.Context, req domain.SaveProfileRequest) (entities.Profile, error) {
	p := req.ToProfile()
	if p.Targets == (entities.Targets{}) {
		p.Targets = entities.DefaultTargets()
	}
	p = ComputeTargets(p)
	return s.profileRepository.SetProfile(ctx, p)
}
