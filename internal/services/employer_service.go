package services

import (
	"strings"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type EmployerService interface {
	// GetProfile returns nil when no company profile exists yet.
	GetProfile(identity *auth.Identity) (*models.EmployerProfile, error)
	UpsertProfile(identity *auth.Identity, req *dto.UpsertEmployerProfileRequest) (*models.EmployerProfile, error)
}

type EmployerServiceImpl struct {
	profileRepo repositories.EmployerProfileRepository
}

func NewEmployerService(profileRepo repositories.EmployerProfileRepository) EmployerService {
	return &EmployerServiceImpl{profileRepo: profileRepo}
}

func (s *EmployerServiceImpl) GetProfile(identity *auth.Identity) (*models.EmployerProfile, error) {
	profile, err := s.profileRepo.FindByUserID(identity.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *EmployerServiceImpl) UpsertProfile(identity *auth.Identity, req *dto.UpsertEmployerProfileRequest) (*models.EmployerProfile, error) {
	profile := &models.EmployerProfile{
		UserID:      identity.UserID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Description: req.Description,
		Website:     strings.TrimSpace(req.Website),
	}
	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	saved, err := s.profileRepo.FindByUserID(identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}
