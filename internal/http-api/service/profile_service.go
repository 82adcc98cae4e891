package service

import (
	"context"
	"errors"
	"log/slog"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/supabase"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoFields        = errors.New("no fields to update")
)

type ProfileService interface {
	GetOrCreate(ctx context.Context, access supabase.Access, userID string) (*dto.ProfileResponse, error)
	Update(ctx context.Context, access supabase.Access, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	elevated    bool
	logger      *slog.Logger
}

// NewProfileService wires the profile store. elevated reports whether a
// service-role key is configured; without it missing profiles cannot be
// lazily provisioned and read as not found.
func NewProfileService(profileRepo repository.ProfileRepository, elevated bool, logger *slog.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		elevated:    elevated,
		logger:      logger,
	}
}

// GetOrCreate returns the caller's profile, provisioning an empty row if
// registration never got that far.
func (s *profileService) GetOrCreate(ctx context.Context, access supabase.Access, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUser(ctx, access, userID)
	if err == nil {
		return dto.FromModelToProfileResponse(profile), nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if !s.elevated {
		return nil, ErrProfileNotFound
	}

	s.logger.Info("provisioning missing profile", "user_id", userID)
	created, err := s.profileRepo.CreateEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToProfileResponse(created), nil
}

func (s *profileService) Update(ctx context.Context, access supabase.Access, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNoFields
	}

	fields := make(map[string]interface{})
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.BirthDate != nil {
		fields["birth_date"] = *req.BirthDate
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}

	if s.elevated {
		access = supabase.Elevated()
	}

	updated, err := s.profileRepo.Update(ctx, access, userID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return dto.FromModelToProfileResponse(updated), nil
}
