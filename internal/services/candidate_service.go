package services

import (
	"context"
	"net/url"
	"strings"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type CandidateService interface {
	// GetProfile returns nil (not an error) when no profile exists yet.
	GetProfile(identity *auth.Identity) (*models.CandidateProfile, error)
	UpsertProfile(identity *auth.Identity, req *dto.UpsertCandidateProfileRequest) (*models.CandidateProfile, error)
	UploadCV(ctx context.Context, identity *auth.Identity, file *UploadedFile) (*models.CandidateProfile, error)
	ListCVs(identity *auth.Identity) ([]dto.CVResponse, error)
	DeleteCV(identity *auth.Identity, cvID string) error
}

type CandidateServiceImpl struct {
	profileRepo repositories.CandidateProfileRepository
	uploader    *cvUploader
}

func NewCandidateService(profileRepo repositories.CandidateProfileRepository, uploader *cvUploader) CandidateService {
	return &CandidateServiceImpl{profileRepo: profileRepo, uploader: uploader}
}

func (s *CandidateServiceImpl) GetProfile(identity *auth.Identity) (*models.CandidateProfile, error) {
	profile, err := s.profileRepo.FindByUserID(identity.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *CandidateServiceImpl) UpsertProfile(identity *auth.Identity, req *dto.UpsertCandidateProfileRequest) (*models.CandidateProfile, error) {
	profile := &models.CandidateProfile{
		UserID:   identity.UserID,
		Phone:    strings.TrimSpace(req.Phone),
		Location: strings.TrimSpace(req.Location),
		Bio:      req.Bio,
	}
	if err := profile.SetSkills(req.Skills); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// upsert keyed on user_id; the cvs column is not in the update set so
	// stored CVs survive profile edits
	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	saved, err := s.profileRepo.FindByUserID(identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

// UploadCV stores the file and appends it to the profile's CV catalog,
// creating the profile on the fly for candidates who never filled one
// in.
func (s *CandidateServiceImpl) UploadCV(ctx context.Context, identity *auth.Identity, file *UploadedFile) (*models.CandidateProfile, error) {
	entry, err := s.uploader.Upload(ctx, identity.UserID, file)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByUserID(identity.UserID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.CandidateProfile{UserID: identity.UserID}
	}

	cvs := append(profile.CVList(), *entry)
	if err := profile.SetCVs(cvs); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.profileRepo.Save(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "CV uploaded", "cv_id", entry.ID, "file_name", entry.FileName)
	return profile, nil
}

func (s *CandidateServiceImpl) ListCVs(identity *auth.Identity) ([]dto.CVResponse, error) {
	profile, err := s.profileRepo.FindByUserID(identity.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNoCVsFound
		}
		return nil, apperrors.InternalError(err)
	}

	cvs := profile.CVList()
	if len(cvs) == 0 {
		return nil, apperrors.ErrNoCVsFound
	}

	out := make([]dto.CVResponse, 0, len(cvs))
	for _, cv := range cvs {
		fileName := cv.FileName
		if fileName == "" {
			fileName = fileNameFromURL(cv.URL)
		}
		out = append(out, dto.CVResponse{
			ID:         cv.ID,
			URL:        cv.URL,
			FileName:   fileName,
			UploadedAt: cv.UploadedAt,
		})
	}
	return out, nil
}

// DeleteCV removes the entry from the catalog. An unknown id is a
// no-op success; the stored object itself is left behind since
// applications may still reference its URL.
func (s *CandidateServiceImpl) DeleteCV(identity *auth.Identity, cvID string) error {
	profile, err := s.profileRepo.FindByUserID(identity.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}

	cvs := profile.CVList()
	kept := make([]models.CVEntry, 0, len(cvs))
	for _, cv := range cvs {
		if cv.ID != cvID {
			kept = append(kept, cv)
		}
	}

	if err := profile.SetCVs(kept); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.profileRepo.Save(profile); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// fileNameFromURL derives a display name for legacy entries stored
// without one.
func fileNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "CV.pdf"
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	name := segments[len(segments)-1]
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		return "CV.pdf"
	}
	return name
}
