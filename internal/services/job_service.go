package services

import (
	"strings"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type JobService interface {
	List(query dto.JobListQuery) ([]models.Job, error)
	Get(id string) (*models.Job, error)
	Create(identity *auth.Identity, req *dto.CreateJobRequest) (*models.Job, error)
	Update(identity *auth.Identity, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(identity *auth.Identity, id string) error
	ListMine(identity *auth.Identity) ([]models.Job, error)

	AdminList() ([]models.Job, error)
	AdminDelete(id string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
	policy  *auth.Policy
}

func NewJobService(jobRepo repositories.JobRepository, policy *auth.Policy) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, policy: policy}
}

func (s *JobServiceImpl) List(query dto.JobListQuery) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(repositories.JobFilter{
		Keyword:  query.Keyword,
		Location: query.Location,
		JobType:  query.JobType,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) Get(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Create(identity *auth.Identity, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		EmployerID:  identity.UserID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    strings.TrimSpace(req.Location),
		JobType:     models.JobType(req.JobType),
		SalaryRange: strings.TrimSpace(req.SalaryRange),
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Update(identity *auth.Identity, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanMutateJob(identity, job) {
		return nil, apperrors.ErrJobForbidden
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = strings.TrimSpace(*req.Location)
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.SalaryRange != nil {
		job.SalaryRange = strings.TrimSpace(*req.SalaryRange)
	}

	if err := s.jobRepo.Save(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(identity *auth.Identity, id string) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	if !s.policy.CanMutateJob(identity, job) {
		return apperrors.ErrJobForbidden
	}
	if err := s.jobRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) ListMine(identity *auth.Identity) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// AdminList returns every job regardless of owner; the admin gate runs
// in the middleware, not here.
func (s *JobServiceImpl) AdminList() ([]models.Job, error) {
	jobs, err := s.jobRepo.ListAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// AdminDelete removes any job without an ownership check.
func (s *JobServiceImpl) AdminDelete(id string) error {
	if err := s.jobRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
