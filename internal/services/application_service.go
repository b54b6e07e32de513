package services

import (
	"context"
	"strings"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// ApplyInput is everything an apply request may carry. File,
// SelectedCVID and the stored profile CVs form a resolution chain; see
// resolveCV.
type ApplyInput struct {
	Message      string
	SelectedCVID string
	File         *UploadedFile
}

type ApplicationService interface {
	Apply(ctx context.Context, identity *auth.Identity, jobID string, input *ApplyInput) (*models.Application, error)
	ListMine(identity *auth.Identity) ([]models.Application, error)
	ListForJob(identity *auth.Identity, jobID string) ([]models.Application, error)
	UpdateStatus(identity *auth.Identity, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	DeleteMine(identity *auth.Identity, applicationID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.CandidateProfileRepository
	userRepo        repositories.UserRepository
	uploader        *cvUploader
	policy          *auth.Policy
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.CandidateProfileRepository,
	userRepo repositories.UserRepository,
	uploader *cvUploader,
	policy *auth.Policy,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		uploader:        uploader,
		policy:          policy,
		emailProvider:   emailProvider,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, identity *auth.Identity, jobID string, input *ApplyInput) (*models.Application, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// check-then-insert: the unique index on (job_id, candidate_id)
	// backstops the race below
	if _, err := s.applicationRepo.FindByJobAndCandidate(jobID, identity.UserID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	cvURL, err := s.resolveCV(ctx, identity.UserID, input)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		JobID:       jobID,
		CandidateID: identity.UserID,
		Message:     strings.TrimSpace(input.Message),
		CVUrl:       cvURL,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Application submitted", "application_id", application.ID, "job_id", jobID)
	return application, nil
}

// resolveCV picks the CV URL to attach: an uploaded file wins, then an
// explicitly selected stored CV, then the most recently uploaded one.
// No CV from any source is a 400.
func (s *ApplicationServiceImpl) resolveCV(ctx context.Context, candidateID string, input *ApplyInput) (string, error) {
	if input.File != nil {
		entry, err := s.uploader.Upload(ctx, candidateID, input.File)
		if err != nil {
			return "", err
		}
		return entry.URL, nil
	}

	profile, err := s.profileRepo.FindByUserID(candidateID)
	if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return "", apperrors.InternalError(err)
	}

	if selected := strings.TrimSpace(input.SelectedCVID); selected != "" {
		if profile == nil {
			return "", apperrors.ErrUnknownCV
		}
		cv := profile.FindCV(selected)
		if cv == nil {
			return "", apperrors.ErrUnknownCV
		}
		return cv.URL, nil
	}

	if profile != nil {
		if cv := profile.LatestCV(); cv != nil {
			return cv.URL, nil
		}
	}
	return "", apperrors.ErrCVRequired
}

func (s *ApplicationServiceImpl) ListMine(identity *auth.Identity) ([]models.Application, error) {
	applications, err := s.applicationRepo.ListByCandidate(identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) ListForJob(identity *auth.Identity, jobID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !s.policy.CanReviewApplication(identity, job) {
		return nil, apperrors.ErrJobForbidden
	}

	applications, err := s.applicationRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(identity *auth.Identity, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(application.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !s.policy.CanReviewApplication(identity, job) {
		return nil, apperrors.ErrJobForbidden
	}

	application.Status = status
	if err := s.applicationRepo.Save(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyStatusChange(application, job)
	return application, nil
}

// notifyStatusChange emails the candidate. Failures are logged and
// swallowed: the status change already committed.
func (s *ApplicationServiceImpl) notifyStatusChange(application *models.Application, job *models.Job) {
	candidate, err := s.userRepo.FindByID(application.CandidateID)
	if err != nil {
		logger.Warn("Status email skipped: candidate lookup failed",
			"application_id", application.ID, "error", err.Error())
		return
	}
	if err := s.emailProvider.SendApplicationStatus(candidate.Email, candidate.Name, job.Title, application.Status); err != nil {
		logger.Warn("Failed to send status email",
			"application_id", application.ID, "email", candidate.Email, "error", err.Error())
	}
}

func (s *ApplicationServiceImpl) DeleteMine(identity *auth.Identity, applicationID string) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	if !s.policy.CanWithdrawApplication(identity, application) {
		return apperrors.NewForbiddenError("Forbidden")
	}
	if err := s.applicationRepo.Delete(applicationID); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
